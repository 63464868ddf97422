package cmd

import (
	"strconv"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/sharecode"
)

// shareArgs turns "@token" into the generate command line it stands for.
func shareArgs(token string) ([]string, error) {
	p, err := sharecode.Decode(token)
	if err != nil {
		return nil, err
	}
	return generateArgs(p), nil
}

func generateArgs(p lcg.Params) []string {
	return []string{
		"generate",
		"--m=" + strconv.FormatUint(p.M, 10),
		"--a=" + strconv.FormatUint(p.A, 10),
		"--c=" + strconv.FormatUint(p.C, 10),
		"--seed=" + strconv.FormatUint(p.Seed, 10),
	}
}
