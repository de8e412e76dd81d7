package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"menuview/internal/config"
	"menuview/internal/menu"
	"menuview/internal/menuapi/menuapitest"
)

var sampleMenu = []struct {
	name  string
	desc  string
	price float64
}{
	{"Nasi goreng", "Fried rice with egg and crackers", 25000},
	{"Mie ayam", "Chicken noodles with bok choy", 20000},
	{"Sate ayam", "Ten chicken skewers, peanut sauce", 30000},
	{"Gado-gado", "Vegetables with peanut dressing", 18000},
	{"Soto betawi", "Beef soup in coconut milk", 32000},
	{"Es teh manis", "Sweet iced tea", 5000},
	{"Pisang goreng", "Fried banana", 10000},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("menustub: %v", err)
	}

	addr := flag.String("addr", cfg.Stub.Addr, "listen address")
	token := flag.String("token", cfg.Stub.Token, "bearer token to accept (empty accepts any)")
	seed := flag.Int("seed", len(sampleMenu), "number of sample items to preload")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: menustub [flags]\n\n")
		fmt.Fprintf(os.Stderr, "menustub serves an in-memory menu API for running menuview locally.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	srv := menuapitest.NewServer(*token)
	for i := 0; i < *seed; i++ {
		s := sampleMenu[i%len(sampleMenu)]
		srv.Seed(menu.Item{
			ID:          menu.ID(strconv.Itoa(i + 1)),
			Name:        s.name,
			Description: s.desc,
			ImageURL:    "https://picsum.photos/seed/menu" + strconv.Itoa(i+1) + "/300",
			Price:       s.price,
		})
	}

	log.Printf("menustub: serving %d items on %s", *seed, *addr)
	hs := &http.Server{
		Addr:              *addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := hs.ListenAndServe(); err != nil {
		log.Fatalf("menustub: %v", err)
	}
}
