package params

import (
	"errors"
	"fmt"

	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/xrpl"
)

var errNoConfigFile = errors.New("no config file specified")

func errConfigFileNotExist(configFile string) error {
	return fmt.Errorf("config file %v not exist", configFile)
}

// CheckConfig check client config
func (c *ClientConfig) CheckConfig() (err error) {
	if c.Identifier == "" {
		return errors.New("client must config non empty 'Identifier'")
	}
	if c.Account != "" && !xrpl.IsValidAddress(c.Account) {
		return fmt.Errorf("wrong client account address '%v'", c.Account)
	}
	if c.Governance == nil {
		return errors.New("client must config 'Governance'")
	}
	if err = c.Governance.CheckConfig(); err != nil {
		return err
	}
	if c.Reputation != nil {
		if err = c.Reputation.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check governance config
func (c *GovernanceConfig) CheckConfig() error {
	if c.GovernorAddress == "" {
		return errors.New("governance must config 'GovernorAddress'")
	}
	if !xrpl.IsValidAddress(c.GovernorAddress) {
		return fmt.Errorf("wrong governor address '%v'", c.GovernorAddress)
	}
	return nil
}

// CheckConfig check reputation config
func (c *ReputationConfig) CheckConfig() error {
	if c.Address == "" {
		return errors.New("reputation must config 'Address'")
	}
	if !xrpl.IsValidAddress(c.Address) {
		return fmt.Errorf("wrong reputation address '%v'", c.Address)
	}
	if c.Namespace != "" {
		ns, err := common.FromHex(c.Namespace)
		if err != nil || len(ns) != 32 {
			return fmt.Errorf("wrong reputation namespace '%v'", c.Namespace)
		}
	}
	return nil
}

// CheckConfig check the aggregated protocol snapshot before use.
// Moment arithmetic is undefined for a non positive moment size, so a
// snapshot carrying one is rejected here and never reaches the calculator.
func (c *Config) CheckConfig() error {
	if c.MomentSize == 0 {
		return errors.New("config must have positive 'MomentSize'")
	}
	for _, addr := range []struct {
		name  string
		value string
	}{
		{"EvrIssuerAddress", c.EvrIssuerAddress},
		{"FoundationAddress", c.FoundationAddress},
		{"RegistryAddress", c.RegistryAddress},
		{"HeartbeatAddress", c.HeartbeatAddress},
		{"GovernorAddress", c.GovernorAddress},
	} {
		if addr.value != "" && !xrpl.IsValidAddress(addr.value) {
			return fmt.Errorf("wrong '%v' address '%v'", addr.name, addr.value)
		}
	}
	return nil
}
