package cmd

import (
	"fmt"
	"os"

	"github.com/envcrypt/envcrypt/internal/envfile"
	"github.com/envcrypt/envcrypt/internal/keys"
	"github.com/envcrypt/envcrypt/internal/utils"
	"github.com/envcrypt/envcrypt/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encryptCipher string
	encryptKey    string
	encryptInput  string
	encryptEnv    string
	encryptPrune  bool
)

var EncryptCmd = &cobra.Command{
	Use:    "encrypt",
	Short:  "Encrypts a .env file into a .env.encrypted artifact",
	Long:   `Encrypts an environment file so it can be safely committed to version control. The artifact is a single base64 blob; only holders of the key can recover the plaintext.`,
	PreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		inputPath := envfile.ResolveEncryptInput(encryptInput, encryptEnv)
		outputPath := envfile.ResolveEncryptOutput(inputPath, encryptEnv)
		Logger.Debugf("Input path: %s, output path: %s", inputPath, outputPath)

		if _, err := os.Stat(inputPath); err != nil {
			fmt.Println(color.RedString("✗") + " Environment file " + color.YellowString(inputPath) + " not found\n" +
				color.CyanString("→") + " Point " + color.YellowString("--input") + " at your environment file")
			return nil
		}

		if _, err := os.Stat(outputPath); err == nil && !force {
			fmt.Println(color.RedString("✗") + " " + color.YellowString(outputPath) + " already exists\n" +
				color.CyanString("→") + " Run again with " + color.YellowString("--force") + " to overwrite it")
			return nil
		}

		// Resolve the key before the spinner starts; this may prompt.
		secret, generated, err := getEncryptSecret(encryptKey)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve encryption key: %v", err)
		}
		defer secret.Destroy()

		spinner, cleanup := startSpinner("Encrypting environment file...", verbose)
		defer cleanup()

		plaintext, err := os.ReadFile(inputPath)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read %s: %v", inputPath, err)
		}
		defer keys.Zero(plaintext)

		Logger.Debugf("Sealing %d bytes with %s", len(plaintext), encryptCipher)
		artifact, err := vault.Seal(encryptCipher, secret, plaintext)
		if err != nil {
			Logger.Errorf("Failed to encrypt %s: %v", inputPath, err)
			spinner.FinalMSG = color.RedString("✗") + " Failed to encrypt " + color.YellowString(inputPath) + "\n" +
				color.RedString("Error: ") + err.Error()
			return err
		}

		if err := os.WriteFile(outputPath, artifact, 0600); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", outputPath, err)
		}
		Logger.Infof("Wrote %d artifact bytes to %s", len(artifact), outputPath)

		varCount, err := envfile.CountVars(plaintext)
		if err != nil {
			Logger.Warnf("Could not parse %s as dotenv syntax: %v", inputPath, err)
		}

		if encryptPrune {
			Logger.Debugf("Pruning plaintext file %s", inputPath)
			if err := os.Remove(inputPath); err != nil {
				return Logger.ErrorfAndReturn("failed to remove %s after encryption: %v", inputPath, err)
			}
		}

		finalMessage := color.GreenString("✓") + " Environment file encrypted successfully!\n" +
			"The following file was created: " + utils.FormatPaths([]string{outputPath})
		if varCount > 0 {
			finalMessage += fmt.Sprintf("    (%d variables)\n", varCount)
		}
		if encryptPrune {
			finalMessage += color.CyanString("→") + " The plaintext file was removed\n"
		}
		finalMessage += color.CyanString("→") + " You can now safely commit " + color.YellowString(outputPath) + " to version control"

		if generated {
			finalMessage += "\n\n" + color.YellowString("⚠") + " IMPORTANT: Store this encryption key in a safe place!\n" +
				"   You will need it to decrypt your environment file later.\n\n" +
				"   Encryption key: " + color.CyanString(keys.SecretPrefix+secret.Text()) + "\n\n" +
				"   This key will not be shown again. Make sure to save it securely."
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	EncryptCmd.Flags().StringVar(&encryptCipher, "cipher", vault.CipherAES256CBC, "cipher to use for encryption")
	EncryptCmd.Flags().StringVarP(&encryptKey, "key", "k", "", "encryption key (will prompt if not provided)")
	EncryptCmd.Flags().StringVarP(&encryptInput, "input", "i", "", "input environment file (default: .env, or .env.{env} with --env)")
	EncryptCmd.Flags().StringVarP(&encryptEnv, "env", "e", "", "environment name, e.g. local or production")
	EncryptCmd.Flags().BoolVar(&encryptPrune, "prune", false, "delete the plaintext file after encryption")
	addCommonFlags(EncryptCmd)
}

// resetEncryptCommandState resets encrypt flags to defaults for testing.
func resetEncryptCommandState() {
	encryptCipher = vault.CipherAES256CBC
	encryptKey = ""
	encryptInput = ""
	encryptEnv = ""
	encryptPrune = false
}
