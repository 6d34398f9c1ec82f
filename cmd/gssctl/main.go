// gssctl: операторская утилита для обслуживания офлайн-кэша и данных провайдеров.
package main

import (
	"os"

	"github.com/markbriannn/gss-maasin-app-sub005/cmd/gssctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
