package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"
)

// PaymentResponse mirrors the JSON returned by POST /api/pay/:method
type PaymentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
	Error         string `json:"error"`
}

// TestResult contains metrics for a single payment
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserStats          map[string]int // requests per user
	ScenarioStats      map[string]int // requests per payment method
	Lock               sync.Mutex
}

// PaymentScenario is one method with a body that passes validation
type PaymentScenario struct {
	Name   string
	Slug   string
	Amount string
	Body   map[string]string
}

// Credentials of a pre-registered user
type Credentials struct {
	Username string
	Password string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of payments to make")
	usersStr := flag.String("u", "alice:secret123", "Comma-separated username:password pairs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the gateway")
	signup := flag.Bool("signup", false, "Register the users before the run")
	delayMs := flag.Int("delay", 100, "Delay between payments in milliseconds")
	flag.Parse()

	users := parseUsers(*usersStr)
	if len(users) == 0 {
		fmt.Println("No valid users given")
		return
	}

	scenarios := []PaymentScenario{
		{"UPI", "upi", "150.00", map[string]string{"upi_id": "loadtest@okbank"}},
		{"Card", "card", "999.99", map[string]string{
			"cardholder_name": "Load Tester",
			"card_number":     "4532015112830366",
			"expiry_date":     "12/35",
			"cvv":             "123",
		}},
		{"Net Banking", "netbanking", "2500", map[string]string{"bank": "HDFC"}},
		{"Wallet", "wallet", "49.50", map[string]string{"wallet": "PhonePe"}},
	}

	fmt.Printf("Load testing payments across %d users\n", len(users))
	fmt.Printf("Payment scenarios: %d methods\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total payments: %d\n", *totalRequests)
	fmt.Printf("Delay between payments: %d ms\n", *delayMs)

	if *signup {
		for _, user := range users {
			if err := register(*baseURL, user); err != nil {
				fmt.Printf("Signup for %s failed: %v\n", user.Username, err)
			}
		}
	}

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserStats:       make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(*baseURL, *delayMs, users[workerID%len(users)], scenarios, jobs, results, stats)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
			stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d payments completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	collected.Wait()
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func parseUsers(raw string) []Credentials {
	var users []Credentials
	for _, pair := range strings.Split(raw, ",") {
		username, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if ok && username != "" && password != "" {
			users = append(users, Credentials{Username: username, Password: password})
		}
	}
	return users
}

// newClient returns a client with its own cookie jar, i.e. its own session
func newClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Timeout: 10 * time.Second,
		Jar:     jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func register(baseURL string, user Credentials) error {
	resp, err := newClient().PostForm(baseURL+"/signup", url.Values{
		"full_name":        {"Load Tester"},
		"email":            {user.Username + "@loadtest.example"},
		"username":         {user.Username},
		"password":         {user.Password},
		"confirm_password": {user.Password},
	})
	if err != nil {
		return err
	}
	resp.Body.Close()
	if location := resp.Header.Get("Location"); location != "/login" {
		return fmt.Errorf("signup redirected to %q", location)
	}
	return nil
}

func login(client *http.Client, baseURL string, user Credentials) error {
	resp, err := client.PostForm(baseURL+"/login", url.Values{
		"username_or_email": {user.Username},
		"password":          {user.Password},
	})
	if err != nil {
		return err
	}
	resp.Body.Close()
	if location := resp.Header.Get("Location"); location != "/payment" {
		return fmt.Errorf("login redirected to %q", location)
	}
	return nil
}

func worker(baseURL string, delayMs int, user Credentials, scenarios []PaymentScenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := newClient()
	loginErr := login(client, baseURL, user)

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}
		if loginErr != nil {
			results <- TestResult{Success: false, Error: fmt.Errorf("login: %w", loginErr)}
			continue
		}

		scenario := scenarios[rand.IntN(len(scenarios))]

		stats.Lock.Lock()
		stats.UserStats[user.Username]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		results <- pay(client, baseURL, scenario)
	}
}

// pay sets the session amount and submits one payment; only the payment call is timed
func pay(client *http.Client, baseURL string, scenario PaymentScenario) TestResult {
	resp, err := client.PostForm(baseURL+"/payment", url.Values{"amount": {scenario.Amount}})
	if err != nil {
		return TestResult{Success: false, Error: err}
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return TestResult{Success: false, StatusCode: resp.StatusCode, Error: fmt.Errorf("set amount: HTTP status code %d", resp.StatusCode)}
	}

	jsonData, err := json.Marshal(scenario.Body)
	if err != nil {
		return TestResult{Success: false, Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/pay/"+scenario.Slug, bytes.NewBuffer(jsonData))
	if err != nil {
		return TestResult{Success: false, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err = client.Do(req)
	result := TestResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	var body PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	result.Success = resp.StatusCode == http.StatusOK && body.Success
	if !result.Success {
		result.Error = fmt.Errorf("HTTP %d: %s", resp.StatusCode, body.Error)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	if stats.TotalRequests == 0 || stats.TotalTime <= 0 {
		fmt.Println("No payments were made")
		return
	}

	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

		sortedTimes := slices.Clone(stats.ResponseTimes)
		slices.Sort(sortedTimes)
		p50 = percentile(sortedTimes, 50)
		p90 = percentile(sortedTimes, 90)
		p95 = percentile(sortedTimes, 95)
		p99 = percentile(sortedTimes, 99)
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Payments:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Payments: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Payments:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful payments / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all payments succeeded)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for username, count := range stats.UserStats {
		fmt.Printf("%-15s: %d payments\n", username, count)
	}

	fmt.Println("\n----------------- METHOD DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d payments\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
