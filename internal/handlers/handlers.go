package handlers

import (
	"complypilot/internal/config"
	"complypilot/internal/documents"
	"complypilot/internal/identity"
	"complypilot/internal/risk"
)

var (
	cfg            *config.Config
	identityClient *identity.Client
	riskManager    *risk.Manager
	documentSvc    *documents.Service
)

// Init wires the handler package's collaborators. Must be called once before
// the router is built.
func Init(c *config.Config, idc *identity.Client, rm *risk.Manager, ds *documents.Service) {
	cfg = c
	identityClient = idc
	riskManager = rm
	documentSvc = ds
}
