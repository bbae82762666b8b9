package client

import (
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
)

// LockScriptFromAddress resolves a short format address against the
// configured secp256k1 blake160 lock.
func LockScriptFromAddress(address string, lock models.ScriptConfig) (Script, error) {
	_, args, err := common.DecodeShortAddress(address)
	if err != nil {
		return Script{}, err
	}
	script, err := ScriptFromConfig(models.ScriptConfig{CodeHash: lock.CodeHash, HashType: lock.HashType})
	if err != nil {
		return Script{}, err
	}
	script.Args = args
	return script, nil
}

// LockScriptFromSigner returns the lock guarding cells owned by signer.
func LockScriptFromSigner(signer common.Signer, lock models.ScriptConfig) (Script, error) {
	script, err := ScriptFromConfig(models.ScriptConfig{CodeHash: lock.CodeHash, HashType: lock.HashType})
	if err != nil {
		return Script{}, err
	}
	script.Args = signer.Blake160()
	return script, nil
}
