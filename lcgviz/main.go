package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/tutils/lcgviz/cmd"
)

func main() {
	if addr := os.Getenv("LCGVIZ_PPROF"); addr != "" {
		go http.ListenAndServe(addr, nil)
	}
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
