package main

import (
	"log"
	"os"

	"github.com/monkedo/connect-go/cli"
	_ "github.com/viant/scy/kms/blowfish"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

}
