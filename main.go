package main

import "bucketpath/cmd"

func main() {
	cmd.Execute()
}
