//go:build !(js && wasm)

package main

import "os"

func getUsername() string {
	if user, ok := os.LookupEnv("USER"); ok && user != "" {
		return user
	}
	return "player"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
