package main

import (
	"fmt"
	"os"

	objstats "github.com/krisalay/objstats"
	"github.com/krisalay/objstats/logger"
	"github.com/krisalay/objstats/types"
	"github.com/krisalay/objstats/validation"
)

// ================= METRICS =================
type Metrics struct {
	inserts, updates, hits, misses, rejects int
}

func (m *Metrics) Insert() { m.inserts++ }
func (m *Metrics) Update() { m.updates++ }
func (m *Metrics) Hit()    { m.hits++ }
func (m *Metrics) Miss()   { m.misses++ }
func (m *Metrics) Reject() { m.rejects++ }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("INSERTS : %d\n", m.inserts)
	fmt.Printf("UPDATES : %d\n", m.updates)
	fmt.Printf("HITS    : %d\n", m.hits)
	fmt.Printf("MISSES  : %d\n", m.misses)
	fmt.Printf("REJECTS : %d\n", m.rejects)
}

func show(label string, s types.Snapshot) {
	size, total, last, dataType := s.Values()
	fmt.Printf("%-28s → (%.1f, %d, %d, %d)\n", label, size, total, last, dataType)
}

// check stops the demo on an error the permissive store should never return.
func check(step string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
		os.Exit(1)
	}
}

// ================= MAIN =================

func main() {
	fmt.Println("\n==================== STORE BOOT ====================")
	fmt.Println("MODE       : permissive")
	fmt.Println("CURSOR     : unset")

	metrics := &Metrics{}
	store := objstats.New(objstats.WithMetrics(metrics))

	// ====================================================
	fmt.Println("\n==================== 1) FIRST TOUCH ====================")
	_, err := store.Touch(5, 100.0, 2, 10)
	check("touch 5", err)
	show("TOUCH 5 size=100 seq=10", store.Snapshot())

	// ====================================================
	fmt.Println("\n==================== 2) HIT ====================")
	check("record hit", store.RecordOutcome(true))
	show("RECORD hit", store.Snapshot())

	// ====================================================
	fmt.Println("\n==================== 3) REPEAT TOUCH ====================")
	_, err = store.Touch(5, 200.0, 2, 20)
	check("touch 5 again", err)
	show("TOUCH 5 size=200 seq=20", store.Snapshot())
	fmt.Println("STORE  → last_request keeps the first request (10)")

	// ====================================================
	fmt.Println("\n==================== 4) NEW KEY ====================")
	_, err = store.Touch(7, 50.0, 1, 21)
	check("touch 7", err)
	show("TOUCH 7 size=50 seq=21", store.Snapshot())
	five, err := store.Lookup(5)
	check("lookup 5", err)
	show("LOOKUP 5 (cursor stays on 7)", five)

	// ====================================================
	fmt.Println("\n==================== 5) FRESH STORE ====================")
	fresh := objstats.New()
	check("record miss", fresh.RecordOutcome(false))
	show("RECORD miss, nothing touched", fresh.Snapshot())
	fmt.Println("STORE  → objects:", fresh.Len())

	// ====================================================
	fmt.Println("\n==================== 6) STRICT MODE ====================")
	strict := objstats.New(
		objstats.WithValidator(validation.NewStrict(0, 1, 2)),
		objstats.WithStrict(),
		objstats.WithMetrics(metrics),
		objstats.WithLogger(logger.NewWithWriter("debug", "text", os.Stdout)),
	)
	if err := strict.RecordOutcome(true); err != nil {
		fmt.Println("STRICT → record outcome:", err)
	}
	if _, err := strict.Touch(9, -1, 0, 30); err != nil {
		fmt.Println("STRICT → touch:", err)
	}
	if _, err := strict.Touch(9, 10, 42, 30); err != nil {
		fmt.Println("STRICT → touch:", err)
	}
	show("STRICT snapshot", strict.Snapshot())

	// ====================================================
	metrics.Print()
}
