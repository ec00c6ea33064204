package main

import (
	"fmt"
	"os"

	"github.com/envcrypt/envcrypt/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "envcrypt",
	Short: "envcrypt - Encrypt and decrypt environment files.",
	Long: `envcrypt encrypts environment-variable files at rest so they can be safely
stored in version control. Only holders of the symmetric key can recover the
plaintext.

Features:
  - Three interoperable cipher suites: AES-256-CBC, AES-256-GCM, CHACHA20-POLY1305
  - Password-based key derivation (PBKDF2-HMAC-SHA256, 100,000 iterations)
  - Tamper-evident artifacts: any modification is rejected on decrypt

Usage:
  envcrypt <command> [flags]

Available Commands:
  encrypt       Encrypt a .env file to .env.encrypted
  decrypt       Decrypt a .env.encrypted file to .env
  generate-key  Generate a fresh random encryption key
  ciphers       List the supported cipher suites
  version       Show the envcrypt version

Run 'envcrypt help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to envcrypt! Run 'envcrypt --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.EncryptCmd)
	rootCmd.AddCommand(cmd.DecryptCmd)
	rootCmd.AddCommand(cmd.GenerateKeyCmd)
	rootCmd.AddCommand(cmd.CiphersCmd)
	rootCmd.AddCommand(cmd.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
