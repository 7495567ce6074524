package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numUsers     = 200
)

var moods = []string{"happy", "excited", "neutral", "sad", "stressed"}
var emotions = []string{"love", "celebrate", "support", "insightful", "curious"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// conversation IDs created during seeding, shared across phases
var (
	convMu  sync.Mutex
	convIDs []string
	postMu  sync.Mutex
	postIDs []string
)

func main() {
	fmt.Println("=== Solaced Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Users: %d\n\n", numWorkers, testDuration, numUsers)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	seedConversations(20)

	// Phase 1: Seed journal entries and posts
	fmt.Println("\n--- Phase 1: Seeding (POST /journal, POST /feed) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.7 {
			return doPostJournal(rng)
		}
		return doPostFeed(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (50% write, 50% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doPostJournal(rng)
		case r < 0.45:
			return doPostMessage(rng)
		case r < 0.50:
			return doToggleLike(rng)
		case r < 0.65:
			return doGetStreak(rng)
		case r < 0.78:
			return doGetEntries(rng)
		case r < 0.90:
			return doGetFeed(rng)
		default:
			return doGetSuggestions(rng)
		}
	})

	// Phase 3: Read-heavy load, mostly cache-served
	fmt.Println("\n--- Phase 3: Read-heavy load (10% write, 90% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doPostJournal(rng)
		case r < 0.40:
			return doGetStreak(rng)
		case r < 0.60:
			return doGetEntries(rng)
		case r < 0.80:
			return doGetFeed(rng)
		case r < 0.90:
			return doGetSuggestions(rng)
		default:
			return doGetRetentionOptions()
		}
	})
}

func seedConversations(n int) {
	fmt.Printf("Seeding %d conversations... ", n)
	for i := 0; i < n; i++ {
		body := map[string]interface{}{
			"participants": []string{userID(i), userID(i + 1)},
			"createdAt":    time.Now().UnixMilli(),
		}
		data, _ := json.Marshal(body)
		resp, err := httpClient.Post(baseURL+"/chat", "application/json", bytes.NewReader(data))
		if err != nil {
			continue
		}
		var conv struct {
			ID string `json:"id"`
		}
		json.NewDecoder(resp.Body).Decode(&conv)
		resp.Body.Close()
		if conv.ID != "" {
			convIDs = append(convIDs, conv.ID)
		}
	}
	fmt.Printf("%d created\n", len(convIDs))
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-28s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 94))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-28s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 94))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func userID(n int) string {
	return fmt.Sprintf("user_%d", n%numUsers)
}

func doPostJournal(rng *rand.Rand) result {
	body := map[string]interface{}{
		"userId":    userID(rng.Intn(numUsers)),
		"mood":      moods[rng.Intn(len(moods))],
		"note":      fmt.Sprintf("entry %d", rng.Intn(100000)),
		"createdAt": time.Now().Add(-time.Duration(rng.Intn(72)) * time.Hour).UnixMilli(),
	}
	if rng.Float64() < 0.2 {
		body["isAnonymous"] = true
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/journal", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /journal", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /journal", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doPostFeed(rng *rand.Rand) result {
	body := map[string]interface{}{
		"userId":    userID(rng.Intn(numUsers)),
		"content":   fmt.Sprintf("post %d", rng.Intn(100000)),
		"mood":      moods[rng.Intn(len(moods))],
		"createdAt": time.Now().UnixMilli(),
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/feed", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /feed", 0, lat, true}
	}
	var post struct {
		ID string `json:"id"`
	}
	json.NewDecoder(resp.Body).Decode(&post)
	resp.Body.Close()
	if post.ID != "" {
		postMu.Lock()
		if len(postIDs) < 1000 {
			postIDs = append(postIDs, post.ID)
		}
		postMu.Unlock()
	}
	return result{"POST /feed", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doPostMessage(rng *rand.Rand) result {
	convMu.Lock()
	if len(convIDs) == 0 {
		convMu.Unlock()
		return result{"POST /chat/message", 0, 0, true}
	}
	convID := convIDs[rng.Intn(len(convIDs))]
	convMu.Unlock()

	body := map[string]interface{}{
		"conversationId": convID,
		"senderId":       userID(rng.Intn(numUsers)),
		"text":           fmt.Sprintf("message %d", rng.Intn(100000)),
		"createdAt":      time.Now().UnixMilli(),
	}
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/chat/message", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /chat/message", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /chat/message", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doToggleLike(rng *rand.Rand) result {
	postMu.Lock()
	if len(postIDs) == 0 {
		postMu.Unlock()
		return result{"POST /feed/like", 0, 0, true}
	}
	postID := postIDs[rng.Intn(len(postIDs))]
	postMu.Unlock()

	var body map[string]interface{}
	endpoint := "POST /feed/like"
	url := baseURL + "/feed/like"
	if rng.Float64() < 0.5 {
		endpoint = "POST /feed/react"
		url = baseURL + "/feed/react"
		body = map[string]interface{}{
			"postId":  postID,
			"userId":  userID(rng.Intn(numUsers)),
			"emotion": emotions[rng.Intn(len(emotions))],
		}
	} else {
		body = map[string]interface{}{
			"postId": postID,
			"userId": userID(rng.Intn(numUsers)),
		}
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(url, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGet(endpoint, url string) result {
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetStreak(rng *rand.Rand) result {
	return doGet("GET /journal/streak", fmt.Sprintf("%s/journal/streak?u=%s", baseURL, userID(rng.Intn(numUsers))))
}

func doGetEntries(rng *rand.Rand) result {
	return doGet("GET /journal/entries", fmt.Sprintf("%s/journal/entries?u=%s&limit=20", baseURL, userID(rng.Intn(numUsers))))
}

func doGetFeed(rng *rand.Rand) result {
	return doGet("GET /feed", fmt.Sprintf("%s/feed?limit=%d", baseURL, 10+rng.Intn(3)*10))
}

func doGetSuggestions(rng *rand.Rand) result {
	return doGet("GET /connect", fmt.Sprintf("%s/connect?u=%s", baseURL, userID(rng.Intn(numUsers))))
}

func doGetRetentionOptions() result {
	return doGet("GET /chat/retention/options", baseURL+"/chat/retention/options")
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
