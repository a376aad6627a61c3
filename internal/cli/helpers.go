package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/manifoldco/promptui"
)

// parseAddress validates and parses a hex address argument.
func parseAddress(arg string) (common.Address, error) {
	if !common.IsHexAddress(arg) {
		return common.Address{}, fmt.Errorf("invalid address %q", arg)
	}
	return common.HexToAddress(arg), nil
}

// parseSignature decodes an optional --signature flag value.
func parseSignature(arg string) ([]byte, error) {
	if arg == "" {
		return nil, nil
	}
	sig, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signature hex: %w", err)
	}
	return sig, nil
}

// confirmPrompt asks a yes/no question, defaulting to no.
func confirmPrompt(question string) bool {
	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	if err != nil {
		return false
	}
	return strings.EqualFold(result, "y") || strings.EqualFold(result, "yes")
}
