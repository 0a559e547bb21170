package main

import "github.com/strollcast/episode-api/cmd"

// @title           Episode Assembly API
// @version         1.0.0
// @description     Synthesizes dialogue script segments, caches segment audio, and assembles finished episodes
// @contact.name    API Support
// @contact.url     https://github.com/strollcast/episode-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
