/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/promptwing/cmd"
	"github.com/josephgoksu/promptwing/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
