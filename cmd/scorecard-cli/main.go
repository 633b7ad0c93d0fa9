package main

import "iplscore-backend/cmd/scorecard-cli/cmd"

func main() {
	cmd.Execute()
}
