package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/nhdewitt/embedhttp/internal/request"
	"github.com/rs/zerolog"
)

const port = ":42069"

func main() {
	addr := flag.String("addr", port, "address to listen on")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal().Err(err).Msg("error listening")
	}
	defer listener.Close()

	log.Info().Str("addr", *addr).Msg("Listening for TCP traffic")
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Fatal().Err(err).Msg("error accepting connection")
		}
		log.Info().Stringer("remote", c.RemoteAddr()).Msg("Connection accepted")

		req, err := request.RequestFromReader(c)
		c.Close()
		if err != nil {
			log.Error().Err(err).Msg("error reading request")
			continue
		}

		fmt.Println("Request line:")
		fmt.Printf("- Method: %s\n", req.Method)
		fmt.Printf("- Path: %s\n", req.Path)
		fmt.Println("Query:")
		for k, v := range req.QueryParams {
			fmt.Printf("- %s: %s\n", k, v)
		}
		fmt.Println("Headers:")
		for _, k := range req.Headers.Keys() {
			fmt.Printf("- %s: %s\n", k, req.Headers[k])
		}
		fmt.Println("Body:")
		fmt.Print(req.Body)
		log.Info().Stringer("remote", c.RemoteAddr()).Msg("Connection closed")
	}
}
