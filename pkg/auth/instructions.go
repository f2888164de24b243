package auth

import (
	"fmt"
	"io"
	"strings"
)

// ShowTokenGuide prints how to supply a Threads access token
func ShowTokenGuide(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, "🔑 THREADS ACCESS TOKEN")
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "followaudit needs a Threads API access token to read your follow list.")
	fmt.Fprintln(w, "The token is only kept in memory and is never written to disk.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supply it in one of these ways (first match wins):")
	fmt.Fprintln(w, "   1. --token flag")
	fmt.Fprintf(w, "   2. %s environment variable (a .env file works too)\n", EnvAccessToken)
	fmt.Fprintln(w, "   3. Hidden prompt when running in a terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "⚠️  The token gives access to your account. Never share it.")
	fmt.Fprintln(w, strings.Repeat("=", 72))
}
