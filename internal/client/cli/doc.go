// Package cli provides the interactive UdharoGuru command-line client.
//
// Every command is gated by the same route table the web front end uses:
// "login" and "register" are for visitors, "chat" needs a private account,
// "pay" and "kyc" need a business account that has not been approved yet,
// and so on. A refused command prints where the user belongs instead.
//
// Commands:
//   - register, login, logout, whoami, home
//   - status: business onboarding status (business accounts)
//   - pay, kyc: onboarding submissions (business accounts)
//   - chat <user_id>: direct messages (private accounts)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
