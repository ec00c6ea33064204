package cmd

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
	"github.com/envcrypt/envcrypt/internal/utils"
)

// getEncryptSecret resolves the secret for an encrypt operation. Priority:
// the --key flag, then (without --no-interaction) an interactive menu that
// generates or prompts, then automatic generation. The boolean reports
// whether the key was freshly generated and must be shown to the user.
func getEncryptSecret(keyArg string) (*keys.Secret, bool, error) {
	if keyArg != "" {
		s, err := keys.ParseSecret(keyArg)
		return s, false, err
	}

	if noInteraction || !utils.IsTerminal() {
		Logger.Infof("No key provided; generating a new one")
		s, err := keys.GenerateSecret(rand.Reader)
		return s, true, err
	}

	switch promptKeyChoice() {
	case keyChoiceCustom:
		pass, err := utils.ReadPassphrase("Enter encryption key: ")
		if err != nil {
			return nil, false, err
		}
		defer keys.Zero(pass)
		s, err := keys.ParseSecret(string(pass))
		return s, false, err
	default:
		s, err := keys.GenerateSecret(rand.Reader)
		return s, true, err
	}
}

// getDecryptSecret resolves the secret for a decrypt operation. Decryption
// can never invent a key, so without --key and with --no-interaction it
// fails instead of prompting.
func getDecryptSecret(keyArg string) (*keys.Secret, error) {
	if keyArg != "" {
		return keys.ParseSecret(keyArg)
	}

	if noInteraction || !utils.IsTerminal() {
		return nil, fmt.Errorf("%w when prompting is unavailable; please provide --key", apperrors.ErrKeyRequired)
	}

	pass, err := utils.ReadPassphrase("Enter decryption key: ")
	if err != nil {
		return nil, err
	}
	defer keys.Zero(pass)
	return keys.ParseSecret(string(pass))
}

type keyChoice int

const (
	keyChoiceGenerate keyChoice = iota
	keyChoiceCustom
)

func promptKeyChoice() keyChoice {
	fmt.Println("\nSelect encryption key option:")
	fmt.Println("  1) Generate a new key (default)")
	fmt.Println("  2) Use a custom key")
	fmt.Print("\nEnter choice [1]: ")

	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		Logger.Debugf("Failed to read key choice: %v", err)
		return keyChoiceGenerate
	}

	switch strings.TrimSpace(input) {
	case "2":
		return keyChoiceCustom
	case "1", "":
		return keyChoiceGenerate
	default:
		fmt.Println("Invalid choice, defaulting to generate new key")
		return keyChoiceGenerate
	}
}
