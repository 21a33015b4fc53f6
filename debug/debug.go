package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve  bool
	Validate bool
	CLI      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("CONFORM_DEBUG_RESOLVE")
	d.Validate = boolEnv("CONFORM_DEBUG_VALIDATE")
	d.CLI = boolEnv("CONFORM_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Validate() bool {
	return d.Validate
}
func CLI() bool {
	return d.CLI
}
