// Package main userdesk account and session service.
//
// Userdesk manages user accounts and issues short-lived session tokens,
// exposing a JSON API alongside server-rendered HTML pages.
package main

import "github.com/userdesk/userdesk/internal"

func main() {
	internal.Run()
}
