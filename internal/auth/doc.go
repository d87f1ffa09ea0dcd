// Package auth provides authentication and authorisation for Alert Console.
//
// It implements a 2-tier role model (user → admin) with:
//   - bcrypt password hashing with a fixed cost factor
//   - Stateless HS256 JWT session tokens (24-hour validity, no server-side state)
//   - A SQLite-backed user directory with unique usernames
//   - First-boot seeding of a default admin account
//
// Sessions are stateless by design: validity is decided solely by the
// token signature and expiry. There is no revocation list — rotating the
// signing secret invalidates all outstanding tokens.
package auth
