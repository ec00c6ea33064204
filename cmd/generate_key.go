package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/envcrypt/envcrypt/internal/keys"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var GenerateKeyCmd = &cobra.Command{
	Use:    "generate-key",
	Short:  "Generates a fresh random encryption key",
	Long:   `Generates a 256-bit random key and prints its textual form. Pass the printed key to encrypt and decrypt via --key; the "base64:" prefix is optional.`,
	PreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := keys.GenerateSecret(rand.Reader)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate key: %v", err)
		}
		defer secret.Destroy()

		fmt.Println(color.GreenString("✓") + " Generated a new encryption key\n\n" +
			"   " + color.CyanString(keys.SecretPrefix+secret.Text()) + "\n\n" +
			color.CyanString("→") + " Store it in a safe place; it will not be shown again")
		return nil
	},
}

func init() {
	addCommonFlags(GenerateKeyCmd)
}
