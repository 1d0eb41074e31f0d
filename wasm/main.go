//go:build js && wasm

// Command wasm is the browser build of the background:
//
//	GOOS=js GOARCH=wasm go build -o particles.wasm ./wasm
package main

import (
	"log"

	"github.com/olivierh59500/particle-field-go/config"
	"github.com/olivierh59500/particle-field-go/web"
)

func main() {
	_, ok, err := web.Mount(config.Default())
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		return
	}
	select {}
}
