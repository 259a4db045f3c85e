package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// tabgen writes a synthetic orders dataset for trying out tabview.

var (
	firstNames = []string{"alice", "bob", "carol", "dave", "eve", "frank", "grace", "heidi", "ivan", "judy"}
	cities     = []string{"berlin", "paris", "rome", "madrid", "lisbon", "vienna", "prague", "oslo"}
	products   = []string{"keyboard", "mouse", "monitor", "dock", "cable", "headset", "webcam"}
	statuses   = []string{"pending", "shipped", "delivered", "returned"}
)

func main() {
	var (
		rows    int
		outPath string
		seed    int64
	)
	flag.IntVar(&rows, "rows", 10000, "Number of rows to generate")
	flag.StringVar(&outPath, "out", "orders.csv", "Output file path")
	flag.Int64Var(&seed, "seed", 0, "Random seed. 0 means time-based")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"order_id", "customer", "city", "product", "quantity", "unit_price", "total", "status", "ordered_at", "note"}
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	start := time.Now().AddDate(0, -6, 0)
	for i := 0; i < rows; i++ {
		qty := 1 + rng.Intn(9)
		price := float64(5+rng.Intn(495)) + 0.99
		rec := []string{
			strconv.Itoa(100000 + i),
			firstNames[rng.Intn(len(firstNames))],
			cities[rng.Intn(len(cities))],
			products[rng.Intn(len(products))],
			strconv.Itoa(qty),
			strconv.FormatFloat(price, 'f', 2, 64),
			strconv.FormatFloat(float64(qty)*price, 'f', 2, 64),
			statuses[rng.Intn(len(statuses))],
			start.Add(time.Duration(rng.Int63n(int64(180 * 24 * time.Hour)))).Format("2006-01-02 15:04:05"),
			note(rng),
		}
		if err := w.Write(rec); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
	}
	w.Flush()
	fmt.Printf("wrote %d rows to %s (seed %d)\n", rows, outPath, seed)
}

// note leaves most rows empty so the viewer's placeholder handling
// is visible in generated data.
func note(rng *rand.Rand) string {
	if rng.Intn(10) != 0 {
		return ""
	}
	notes := []string{
		"gift wrap",
		"call before delivery",
		"leave at door,\nring the bell",
		"fragile",
	}
	return notes[rng.Intn(len(notes))]
}
