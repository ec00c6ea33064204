package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/envcrypt/envcrypt/internal/envfile"
	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
	"github.com/envcrypt/envcrypt/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	decryptCipher string
	decryptKey    string
	decryptInput  string
)

var DecryptCmd = &cobra.Command{
	Use:    "decrypt",
	Short:  "Decrypts a .env.encrypted artifact back into a .env file",
	Long:   `Decrypts an encrypted environment file. The cipher and key must match the ones used for encryption; a tampered artifact or wrong key is rejected without writing any output.`,
	PreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		inputPath := envfile.ResolveDecryptInput(decryptInput)
		outputPath := envfile.DeriveOutputPath(inputPath, false)
		Logger.Debugf("Input path: %s, output path: %s", inputPath, outputPath)

		if _, err := os.Stat(inputPath); err != nil {
			fmt.Println(color.RedString("✗") + " Encrypted file " + color.YellowString(inputPath) + " not found\n" +
				color.CyanString("→") + " Point " + color.YellowString("--input") + " at your encrypted file")
			return nil
		}

		if _, err := os.Stat(outputPath); err == nil && !force {
			fmt.Println(color.RedString("✗") + " " + color.YellowString(outputPath) + " already exists\n" +
				color.CyanString("→") + " Run again with " + color.YellowString("--force") + " to overwrite it")
			return nil
		}

		secret, err := getDecryptSecret(decryptKey)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve decryption key: %v", err)
		}
		defer secret.Destroy()

		spinner, cleanup := startSpinner("Decrypting environment file...", verbose)
		defer cleanup()

		artifact, err := os.ReadFile(inputPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read %s: %v", inputPath, err)
		}

		plaintext, err := vault.Open(decryptCipher, secret, bytes.TrimSpace(artifact))
		if err != nil {
			Logger.Errorf("Failed to decrypt %s: %v", inputPath, err)
			switch {
			case errors.Is(err, apperrors.ErrMalformedArtifact):
				spinner.FinalMSG = color.RedString("✗") + " " + color.YellowString(inputPath) + " is not a valid encrypted payload\n" +
					color.CyanString("→") + " Was the file edited or truncated after encryption?"
			case errors.Is(err, apperrors.ErrAuthenticationFailed):
				spinner.FinalMSG = color.RedString("✗") + " Could not authenticate " + color.YellowString(inputPath) + "\n" +
					color.CyanString("→") + " The key is wrong, the cipher does not match, or the file was tampered with"
			default:
				spinner.FinalMSG = color.RedString("✗") + " Failed to decrypt " + color.YellowString(inputPath) + "\n" +
					color.RedString("Error: ") + err.Error()
			}
			return err
		}
		defer keys.Zero(plaintext)

		// #nosec G306 -- We want the decrypted .env file to be editable by the user
		if err := os.WriteFile(outputPath, plaintext, 0644); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", outputPath, err)
		}

		varCount, err := envfile.CountVars(plaintext)
		if err != nil {
			Logger.Warnf("Could not parse decrypted content as dotenv syntax: %v", err)
		}

		finalMessage := color.GreenString("✓") + " Environment file decrypted successfully!\n" +
			"    " + color.YellowString(inputPath) + " → " + color.YellowString(outputPath)
		if varCount > 0 {
			finalMessage += fmt.Sprintf(" (%d variables)", varCount)
		}
		finalMessage += "\n" + color.CyanString("→") + " Keep " + color.YellowString(outputPath) + " out of version control"

		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	DecryptCmd.Flags().StringVar(&decryptCipher, "cipher", vault.CipherAES256CBC, "cipher to use for decryption")
	DecryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "decryption key (will prompt if not provided)")
	DecryptCmd.Flags().StringVarP(&decryptInput, "input", "i", "", "input encrypted file (default: .env.encrypted)")
	addCommonFlags(DecryptCmd)
}

// resetDecryptCommandState resets decrypt flags to defaults for testing.
func resetDecryptCommandState() {
	decryptCipher = vault.CipherAES256CBC
	decryptKey = ""
	decryptInput = ""
}
