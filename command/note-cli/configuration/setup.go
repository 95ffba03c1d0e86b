// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Ledger          string              `json:"ledger"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// InfoIdentity - public view of an identity
type InfoIdentity struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Account     account.PublicKey `json:"account"`
	Default     bool              `json:"default"`
}

// New - empty configuration for a ledger configuration file
func New(ledgerFile string) *Configuration {
	return &Configuration{
		Ledger:     ledgerFile,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(options)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (account.PublicKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return account.PublicKey{}, err
	}

	return account.PublicKeyFromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
//
// the first identity added becomes the default
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.PublicKey().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// List - public view of all identities sorted by name
func (config *Configuration) List() ([]InfoIdentity, error) {
	list := make([]InfoIdentity, 0, len(config.Identities))
	for name, id := range config.Identities {
		acc, err := account.PublicKeyFromBase58(id.Account)
		if nil != err {
			return nil, err
		}
		list = append(list, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     acc,
			Default:     name == config.DefaultIdentity,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list, nil
}
