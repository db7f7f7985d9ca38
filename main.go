package main

import (
	log "github.com/golang/glog"

	"github.com/bobonovski/word2vec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Exitf("%v", err)
	}
}
