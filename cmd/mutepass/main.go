// Command mutepass generates random passwords and scores password strength.
package main

import (
	"os"

	"github.com/mutepass/mutepass-go/internal/cli"
)

const version = "v1.0.0"

func main() {
	os.Exit(cli.Execute(version))
}
