package main

import "github.com/makaraci/filespect/internal/cli"

func main() {
	cli.Main(cli.DefineFilegrepCommand())
}
