// Command deskres_hashpassword prints the bcrypt hash to use as ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/desk_reservation_app/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	password := pflag.StringP("password", "p", "", "administrator password; read from stdin when empty")
	pflag.Parse()

	if *password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "failed to read password from stdin:", err)
			os.Exit(1)
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
