package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loanledger-cli",
		Short: "LoanLedger CLI tool",
		Long:  `A command line interface for interacting with the LoanLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LoanLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Loan commands
	loanCmd := &cobra.Command{
		Use:   "loan",
		Short: "Loan operations",
	}

	loanCmd.AddCommand(&cobra.Command{
		Use:   "show <loan-id>",
		Short: "Show a loan with its installment ledger",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showLedger(args[0])
		},
	})

	loanCmd.AddCommand(&cobra.Command{
		Use:   "check <loan-id>",
		Short: "Check a loan's stored balance against its ledger",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			checkLoan(args[0])
		},
	})

	rootCmd.AddCommand(loanCmd)

	// Payment commands
	paymentCmd := &cobra.Command{
		Use:   "payment",
		Short: "Payment operations",
	}

	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a payment to a loan",
		Run: func(cmd *cobra.Command, args []string) {
			loanID, _ := cmd.Flags().GetString("loan")
			reference, _ := cmd.Flags().GetString("reference")
			amount, _ := cmd.Flags().GetString("amount")
			applyPayment(loanID, reference, amount)
		},
	}
	applyCmd.Flags().String("loan", "", "Loan account ID")
	applyCmd.Flags().String("reference", "", "Loan reference code")
	applyCmd.Flags().String("amount", "", "Payment amount")
	_ = applyCmd.MarkFlagRequired("amount")
	paymentCmd.AddCommand(applyCmd)

	paymentCmd.AddCommand(&cobra.Command{
		Use:   "bulk <file.csv>",
		Short: "Upload a CSV batch of payments",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			uploadBatch(args[0])
		},
	})

	rootCmd.AddCommand(paymentCmd)

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	ledgerCmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check book-wide ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	})

	rootCmd.AddCommand(ledgerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showLedger(loanID string) {
	body := getJSON("/api/v1/loans/" + loanID + "/ledger")

	var result struct {
		Loan         map[string]any `json:"loan"`
		Installments []struct {
			SequenceNumber     int    `json:"sequence_number"`
			DueAmount          string `json:"due_amount"`
			AmortizedPrincipal string `json:"amortized_principal"`
			NewBalance         string `json:"new_balance"`
			State              string `json:"state"`
			PaymentDate        string `json:"payment_date"`
		} `json:"installments"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loan %s (%s)\n", result.Loan["id"], result.Loan["reference_code"])
	fmt.Printf("Outstanding: %s\n\n", result.Loan["outstanding_balance"])
	fmt.Printf("%-5s %12s %12s %12s %-8s %-12s\n", "SEQ", "DUE", "AMORTIZED", "BALANCE", "STATE", "PAID ON")
	for _, inst := range result.Installments {
		fmt.Printf("%-5d %12s %12s %12s %-8s %-12s\n",
			inst.SequenceNumber, inst.DueAmount, inst.AmortizedPrincipal,
			inst.NewBalance, inst.State, truncate(inst.PaymentDate, 10))
	}
}

func checkLoan(loanID string) {
	body := getJSON("/api/v1/loans/" + loanID + "/consistency")

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)

	if reconciled, ok := result["is_reconciled"].(bool); ok && !reconciled {
		os.Exit(1)
	}
}

func applyPayment(loanID, reference, amount string) {
	payload := map[string]string{"amount": amount}
	if loanID != "" {
		payload["loan_account_id"] = loanID
	}
	if reference != "" {
		payload["loan_reference"] = reference
	}

	body, status := postJSON("/api/v1/payments/", payload)

	if status != http.StatusOK && status != http.StatusCreated {
		fmt.Printf("Payment failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if applied, ok := result["applied"].(bool); ok && !applied {
		fmt.Println("Loan has no pending debt; payment ignored")
		return
	}

	printJSON(result)
}

func uploadBatch(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Failed to open file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseBulkCSV(f)
	if err != nil {
		fmt.Printf("Failed to read CSV: %v\n", err)
		os.Exit(1)
	}

	body, status := postJSON("/api/v1/payments/bulk", map[string]any{"rows": rows})

	if status != http.StatusOK {
		fmt.Printf("Bulk upload failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result struct {
		BatchID string         `json:"batch_id"`
		Counts  map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Batch %s processed\n", result.BatchID)
	for status, count := range result.Counts {
		fmt.Printf("  %s: %d\n", status, count)
	}
}

type bulkRow struct {
	Identifier string `json:"identifier"`
	Amount     string `json:"amount"`
}

// parseBulkCSV reads two-column rows as-is; header detection and value
// normalization happen server side.
func parseBulkCSV(r io.Reader) ([]bulkRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []bulkRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := bulkRow{}
		if len(record) > 0 {
			row.Identifier = record[0]
		}
		if len(record) > 1 {
			row.Amount = record[1]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func checkConsistency() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		TotalLoans      int              `json:"total_loans"`
		ReconciledLoans int              `json:"reconciled_loans"`
		Consistent      bool             `json:"consistent"`
		Discrepancies   []map[string]any `json:"discrepancies"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if result.Consistent {
		fmt.Printf("Consistency check PASSED\n")
	} else {
		fmt.Printf("Consistency check FAILED\n")
	}
	fmt.Printf("Loans: %d total, %d reconciled\n", result.TotalLoans, result.ReconciledLoans)

	if len(result.Discrepancies) > 0 {
		printJSON(result.Discrepancies)
		os.Exit(1)
	}
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}

func postJSON(path string, payload any) ([]byte, int) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	return body, resp.StatusCode
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
