package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimblesign/fairblind"
	"github.com/nimblesign/fairblind/judge"
	"github.com/nimblesign/fairblind/keygen"
	"github.com/nimblesign/fairblind/session"
)

var (
	bits     int
	k        int
	senderID string
	message  string
	output   string
	count    int

	rootCmd = &cobra.Command{
		Use:   "fairblind-cli",
		Short: "Demo and debugging CLI for the fair blind signature protocol",
	}

	keygenCmd = &cobra.Command{
		Use:   "keygen",
		Short: "Generate a Signer key, a Judge key, and the resulting session Parameters",
		RunE:  runKeygen,
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run one full Sender/Signer/Verifier exchange and report the result",
		RunE:  runDemo,
	}

	poolCmd = &cobra.Command{
		Use:   "pool",
		Short: "Run many independent exchanges concurrently through session.Pool",
		RunE:  runPool,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&bits, "bits", 512, "RSA key size for the Signer")
	rootCmd.PersistentFlags().IntVar(&k, "k", 8, "security parameter k (2k commitments)")
	rootCmd.PersistentFlags().StringVar(&senderID, "sender-id", "demo-sender", "sender identifier bound into each session")

	keygenCmd.Flags().StringVar(&output, "output", "", "file to write the PEM-encoded Parameters to (default stdout)")

	demoCmd.Flags().StringVar(&message, "message", "hello, fairblind", "message to request a signature for")

	poolCmd.Flags().StringVar(&message, "message", "hello, fairblind", "base message; each concurrent session signs a numbered variant")
	poolCmd.Flags().IntVar(&count, "count", 10, "number of concurrent sessions to run")

	rootCmd.AddCommand(keygenCmd, demoCmd, poolCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fairblind-cli: %v\n", err)
		os.Exit(1)
	}
}

func runKeygen(cmd *cobra.Command, args []string) error {
	signerKey, err := keygen.GenerateSignerKey(bits, nil)
	if err != nil {
		return err
	}
	judgeKey, err := keygen.NewJudgeKey(nil)
	if err != nil {
		return err
	}
	cipher, err := judge.NewSealedCipher(judgeKey)
	if err != nil {
		return err
	}

	params, err := fairblind.NewParameters(cipher, &signerKey.PublicKey, k, []byte(senderID))
	if err != nil {
		return err
	}

	encoded, err := params.EncodePEM()
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Print(encoded)
		fmt.Printf("judge key (hex, keep secret): %x\n", judgeKey)
		fmt.Printf("signer private exponent d (keep secret): %s\n", signerKey.D.String())
		return nil
	}
	return os.WriteFile(output, []byte(encoded), 0600)
}

func runDemo(cmd *cobra.Command, args []string) error {
	signerKey, err := keygen.GenerateSignerKey(bits, nil)
	if err != nil {
		return err
	}
	judgeKey, err := keygen.NewJudgeKey(nil)
	if err != nil {
		return err
	}
	cipher, err := judge.NewSealedCipher(judgeKey)
	if err != nil {
		return err
	}
	params, err := fairblind.NewParameters(cipher, &signerKey.PublicKey, k, []byte(senderID))
	if err != nil {
		return err
	}

	pool := session.NewPool(params, signerKey)
	results, err := pool.Run(context.Background(), [][]byte{[]byte(message)})
	if err != nil {
		return err
	}

	sig := results[0].Signature
	ok, err := fairblind.Verify(params, sig, []byte(message))
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("signature verified for message %q (k=%d, bits=%d)\n", message, k, bits)
	} else {
		fmt.Printf("signature did NOT verify for message %q\n", message)
		return fmt.Errorf("verification failed")
	}
	return nil
}

func runPool(cmd *cobra.Command, args []string) error {
	signerKey, err := keygen.GenerateSignerKey(bits, nil)
	if err != nil {
		return err
	}
	judgeKey, err := keygen.NewJudgeKey(nil)
	if err != nil {
		return err
	}
	cipher, err := judge.NewSealedCipher(judgeKey)
	if err != nil {
		return err
	}
	params, err := fairblind.NewParameters(cipher, &signerKey.PublicKey, k, []byte(senderID))
	if err != nil {
		return err
	}

	messages := make([][]byte, count)
	for i := range messages {
		messages[i] = []byte(fmt.Sprintf("%s #%d", message, i))
	}

	pool := session.NewPool(params, signerKey)
	results, err := pool.Run(context.Background(), messages)
	if err != nil {
		return err
	}

	verified := 0
	for _, r := range results {
		ok, err := fairblind.Verify(params, r.Signature, r.Message)
		if err != nil {
			return err
		}
		if ok {
			verified++
		}
	}
	fmt.Printf("ran %d concurrent sessions, %d/%d verified\n", count, verified, len(results))
	if verified != len(results) {
		return fmt.Errorf("%d session(s) failed to verify", len(results)-verified)
	}
	return nil
}
