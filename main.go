package main

import "github.com/warpedwall/ninja-index/cmd"

// @title           Ninja Index API
// @version         1.0.0
// @description     An athlete appearance index for ninja competition videos
// @contact.name    API Support
// @contact.url     https://github.com/warpedwall/ninja-index
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
