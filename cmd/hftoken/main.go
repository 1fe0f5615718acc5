// Package main implements hftoken, a helper for storing and
// inspecting the Hugging Face Hub access token used by hfassets.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RagerGr/go-hfassets/internal/token"
)

var (
	value          string
	tokenFile      string
	nonInteractive bool
	osExit         = os.Exit // For testing purposes
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hftoken",
		Short: "Manage the Hugging Face Hub access token",
		Long: `A tool for managing the Hub access token used by hfassets.
The token is stored in the same file the Hub's own tooling uses
($HF_HOME/token, or ~/.cache/huggingface/token by default), so a token
configured either way is shared.`,
	}

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Store a Hub access token",
		Long: `Stores a Hub access token in the token file with owner-only
permissions. The value may be passed with --token, read from a file with
--token-file, taken from HF_TOKEN in non-interactive mode, or entered at
the prompt.`,
		Run: setupToken,
	}

	setupCmd.Flags().StringVarP(&value, "token", "t", "", "Token value")
	setupCmd.Flags().StringVarP(&tokenFile, "token-file", "f", "", "File containing the token value")
	setupCmd.Flags().BoolVarP(&nonInteractive, "non-interactive", "n", false, "Run in non-interactive mode")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured token (redacted) and where it came from",
		Run:   showToken,
	}

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(showCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func setupToken(cmd *cobra.Command, args []string) {
	value = strings.TrimSpace(value)

	// Load token from file if specified
	if value == "" && tokenFile != "" {
		if err := checkFilePermissions(tokenFile); err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
		if err := loadTokenFromFile(); err != nil {
			fmt.Printf("Error loading token from file: %v\n", err)
			osExit(1)
			return
		}
	}

	// Fall back to the environment in non-interactive mode
	if value == "" && nonInteractive {
		loadFromEnv()
	}

	if value == "" && !nonInteractive {
		fmt.Print("\nPlease enter your Hub access token: ")

		// Create a context with 30-second timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Channel to receive the token input
		tokenCh := make(chan string)

		// Start a goroutine to read the token
		go func() {
			var input string
			fmt.Scanln(&input)
			tokenCh <- input
		}()

		// Wait for either token input or timeout
		select {
		case input := <-tokenCh:
			value = strings.TrimSpace(input)
		case <-ctx.Done():
			fmt.Println("\nTimeout: No token provided within 30 seconds")
			osExit(1)
			return
		}
	}

	if value == "" {
		fmt.Println("Error: No token provided")
		osExit(1)
		return
	}

	kind := token.DetectKind(value)
	if kind == token.KindUnknown {
		fmt.Println("Warning: token has no recognized prefix (hf_ or api_org_); storing it anyway")
	} else {
		fmt.Printf("Detected %s token\n", kind)
	}

	if err := (token.FileStore{}).Save(value); err != nil {
		fmt.Printf("Error storing token: %v\n", err)
		osExit(1)
		return
	}

	if path, err := token.DefaultTokenPath(); err == nil {
		fmt.Printf("\nToken stored in %s\n", path)
	}
}

func showToken(cmd *cobra.Command, args []string) {
	tok, err := token.Resolve(token.EnvSource{}, token.FileSource{})
	if errors.Is(err, token.ErrTokenNotFound) {
		fmt.Println("No Hub token configured.")
		if path, pathErr := token.DefaultTokenPath(); pathErr == nil {
			fmt.Printf("Run 'hftoken setup' to store one in %s\n", path)
		}
		return
	}
	if err != nil {
		fmt.Printf("Error resolving token: %v\n", err)
		osExit(1)
		return
	}

	fmt.Printf("Token:  %s\n", redact(tok.Value))
	fmt.Printf("Kind:   %s\n", token.DetectKind(tok.Value))
	fmt.Printf("Source: %s\n", tok.Source)
}

// loadFromEnv pulls the token from the process environment.
func loadFromEnv() {
	if envToken, err := (token.EnvSource{}).Resolve(); err == nil {
		value = envToken.Value
	}
}

// loadTokenFromFile reads the token value from the --token-file path.
func loadTokenFromFile() error {
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return err
	}
	value = strings.TrimSpace(string(data))
	return nil
}

// checkFilePermissions warns when a token input file is readable by
// group or others.
func checkFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to check file permissions: %w", err)
	}
	if info.Mode().Perm()&0077 != 0 {
		return fmt.Errorf("token file has loose permissions, consider: chmod 600 %s", path)
	}
	return nil
}

// redact keeps enough of the token to recognize it without exposing
// the whole value.
func redact(v string) string {
	if len(v) <= 7 {
		return strings.Repeat("*", len(v))
	}
	return v[:7] + strings.Repeat("*", len(v)-7)
}
