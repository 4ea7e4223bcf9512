package main

import "github.com/codegirl-007/kiddos-api/cmd"

// @title           Kiddos API
// @version         1.0.0
// @description     A family-safe video catalog backed by a curated channel cache
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	cmd.Execute()
}
