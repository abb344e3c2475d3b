package handlers

import (
	"github.com/fatflowers/membership/internal/app/service/account"
	"github.com/fatflowers/membership/internal/app/service/membership"
	"github.com/fatflowers/membership/internal/app/service/report"
	models "github.com/fatflowers/membership/internal/models"
	"github.com/fatflowers/membership/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespIdentity wraps an identity in the standard envelope.
type RespIdentity struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Identity          `json:"data"`
}

type RespSignIn struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    account.SignInResponse   `json:"data"`
}

// RespMembership wraps a membership with its derived status.
type RespMembership struct {
	Code    response.APIResponseCode  `json:"code"`
	Message string                    `json:"message"`
	Data    membership.MembershipItem `json:"data"`
}

type RespListMemberships struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    membership.ScanResponse  `json:"data"`
}

type RespListMembershipLogs struct {
	Code    response.APIResponseCode    `json:"code"`
	Message string                      `json:"message"`
	Data    membership.ScanLogsResponse `json:"data"`
}

type RespReport struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    report.Response          `json:"data"`
}
