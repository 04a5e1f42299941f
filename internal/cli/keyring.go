package cli

import (
	"fmt"

	"github.com/julianstephens/prodhub/internal/keyring"
)

type KeyringSetCmd struct {
	ConnStr string `arg:"" help:"Postgres connection string to store in the OS keyring."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type KeyringShowCmd struct{}

func (c *KeyringShowCmd) Run(ctx *Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		return err
	}
	fmt.Println(connStr)
	return nil
}

type KeyringClearCmd struct{}

func (c *KeyringClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
