// Command rota previews rotation and recurrence schedules. It is a
// development aid for checking what the engine will decide for a given rule
// or interval, e.g.:
//
//	rota -rule "FREQ=WEEKLY;BYDAY=MO,TH" -from 2026-01-07 -n 4
//	rota -interval 2w -last 2026-01-01
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pfahey/rota/internal/logging"
	"github.com/pfahey/rota/internal/recurrence"
	"github.com/pfahey/rota/internal/rotation"
)

func main() {
	ruleStr := flag.String("rule", "", "recurrence rule, e.g. FREQ=WEEKLY;BYDAY=MO,TH")
	intervalStr := flag.String("interval", "", "rotation interval, e.g. 15m, 2w, 3mo")
	fromStr := flag.String("from", "", "start date for recurrence preview (YYYY-MM-DD, default today)")
	lastStr := flag.String("last", "", "last rotation time (YYYY-MM-DD, default never)")
	n := flag.Int("n", 5, "number of occurrences to preview")
	flag.Parse()

	logging.Setup(os.Getenv("ROTA_LOG_LEVEL"), os.Getenv("ROTA_LOG_FORMAT"))

	if *ruleStr == "" && *intervalStr == "" {
		flag.Usage()
		os.Exit(2)
	}

	now := time.Now().UTC()

	if *ruleStr != "" {
		rule, err := recurrence.Parse(*ruleStr)
		if err != nil {
			log.Fatalf("invalid rule: %v", err)
		}
		from := now
		if *fromStr != "" {
			from, err = time.Parse("2006-01-02", *fromStr)
			if err != nil {
				log.Fatalf("invalid -from date: %v", err)
			}
		}

		fmt.Println(rule.Describe())
		current := from
		for i := 0; i < *n; i++ {
			next := recurrence.Next(current, rule)
			if recurrence.ShouldEnd(rule, i+1, next) {
				fmt.Println("series ends")
				break
			}
			fmt.Printf("%2d. %s (%s)\n", i+1, next.Format("2006-01-02"), next.Weekday())
			current = next
		}
	}

	if *intervalStr != "" {
		iv, err := rotation.ParseInterval(*intervalStr)
		if err != nil {
			log.Fatalf("invalid interval: %v", err)
		}
		var last *time.Time
		if *lastStr != "" {
			t, err := time.Parse("2006-01-02", *lastStr)
			if err != nil {
				log.Fatalf("invalid -last date: %v", err)
			}
			last = &t
		}

		fmt.Println(iv.Describe())
		for i := 0; i < *n; i++ {
			next := rotation.NextRotationTime(last, iv, now)
			fmt.Printf("%2d. %s\n", i+1, next.Format(time.RFC3339))
			last = &next
		}
	}
}
