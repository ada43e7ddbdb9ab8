package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"
)

var concurrentBodies = []string{
	`{"startDate":"2024-01-01","finalDate":"2024-04-01","firstPaymentDate":"2024-02-01","loanAmount":1000,"interestRate":0.02}`,
	`{"startDate":"2024-01-01","finalDate":"2024-06-16","firstPaymentDate":"2024-01-16","loanAmount":1000,"interestRate":0.02}`,
	`{"startDate":"2024-01-15","finalDate":"2034-01-15","firstPaymentDate":"2024-02-15","loanAmount":250000.55,"interestRate":0.0089}`,
	`{"startDate":"2023-11-30","finalDate":"2025-02-28","firstPaymentDate":"2024-01-31","loanAmount":48000,"interestRate":0.011}`,
}

// TestConcurrentRequests checks that parallel requests get the same bytes a
// serial request gets.
func TestConcurrentRequests(t *testing.T) {
	srv, _ := newServer(t, "../../config.yaml.example")

	baseline := make([][]byte, len(concurrentBodies))
	for i, body := range concurrentBodies {
		status, data := post(t, srv.URL, []byte(body))
		if status != http.StatusOK {
			t.Fatalf("baseline %d: expected status 200, got %d: %s", i, status, data)
		}
		baseline[i] = data
	}

	const workers = 16
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for n := 0; n < perWorker; n++ {
				i := (w + n) % len(concurrentBodies)
				resp, err := http.Post(srv.URL+"/api/calculate", "application/json", bytes.NewReader([]byte(concurrentBodies[i])))
				if err != nil {
					errs <- err
					continue
				}
				var buf bytes.Buffer
				_, err = buf.ReadFrom(resp.Body)
				_ = resp.Body.Close()
				if err != nil {
					errs <- err
					continue
				}
				if !bytes.Equal(buf.Bytes(), baseline[i]) {
					errs <- fmt.Errorf("worker %d request %d: response differs from baseline", w, n)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// TestPerformance times the longest schedule the default limits accept.
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}
	srv, _ := newServer(t, "../../config.yaml.example")

	body := []byte(`{"startDate":"2000-01-01","finalDate":"2099-12-01","firstPaymentDate":"2000-02-01","loanAmount":1500000,"interestRate":0.009}`)

	start := time.Now()
	status, data := post(t, srv.URL, body)
	elapsed := time.Since(start)

	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", status, data)
	}

	t.Logf("Performance metrics:")
	t.Logf("  Century-long schedule: %v (%d bytes)", elapsed, len(data))

	// Performance expectations (adjust as needed)
	if elapsed > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", elapsed)
	}
}
