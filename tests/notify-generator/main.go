package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type User struct {
	ID       *int64 `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func randomUser(i int) User {
	var id *int64
	// примерно каждый пятый пользователь без id
	if rand.Intn(5) != 0 {
		v := int64(i + 1)
		id = &v
	}
	return User{
		ID:       id,
		Username: fmt.Sprintf("user%d", i),
		Email:    fmt.Sprintf("user%d@example.com", i),
	}
}

func main() {
	base := flag.String("base", "http://localhost:8082", "notification service base URL")
	workers := flag.Int("workers", 4, "concurrent senders")
	requests := flag.Int("requests", 100, "requests per worker")
	batchSize := flag.Int("batch", 10, "users per batch request")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	target := *base + "/api/notifications/batch?message=" + url.QueryEscape("load test")

	start := time.Now()

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < *workers; w++ {
		g.Go(func() error {
			for i := 0; i < *requests; i++ {
				users := make([]User, *batchSize)
				for j := range users {
					users[j] = randomUser(i**batchSize + j)
				}

				body, err := json.Marshal(users)
				if err != nil {
					return err
				}

				req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(string(body)))
				if err != nil {
					return err
				}
				req.Header.Set("Content-Type", "application/json")

				res, err := client.Do(req)
				if err != nil {
					return err
				}
				res.Body.Close()

				if res.StatusCode != http.StatusOK {
					return fmt.Errorf("unexpected status %d", res.StatusCode)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("load run failed: %v", err)
	}

	total := *workers * *requests
	log.Printf("sent %d batch requests in %s", total, time.Since(start))
}
