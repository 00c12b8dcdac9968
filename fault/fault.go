// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AccountMismatch              = InvalidError("secret does not match account address")
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CertificateFileNotFound      = NotFoundError("certificate file not found")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	HookCodeNotFound             = NotFoundError("hook code file not found")
	HookNotInstalled             = NotFoundError("hook not installed")
	HookPositionsFull            = ProcessError("no free hook position")
	InvalidAccountAddress        = InvalidError("invalid account address")
	InvalidAddressChecksum       = InvalidError("invalid address checksum")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidConfiguration         = InvalidError("configuration must return a table")
	InvalidCount                 = InvalidError("invalid count")
	InvalidDeadline              = InvalidError("invalid deadline")
	InvalidDefinitions           = InvalidError("invalid ledger definitions")
	InvalidDuration              = InvalidError("invalid duration")
	InvalidFee                   = InvalidError("invalid fee")
	InvalidFieldValue            = InvalidError("invalid field value")
	InvalidHex                   = InvalidError("invalid hex string")
	InvalidHookHash              = InvalidError("hook hash does not match hook code")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidLedgerURL             = InvalidError("invalid ledger url")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidNamespace             = InvalidError("invalid namespace")
	InvalidOfferType             = InvalidError("invalid offer type")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidRentalType            = InvalidError("invalid rental type")
	InvalidSeed                  = InvalidError("invalid seed")
	InvalidSeedChecksum          = InvalidError("invalid seed checksum")
	InvalidTransactionType       = InvalidError("invalid transaction type")
	InvalidURITokenID            = InvalidError("invalid uri token id")
	InvalidXFL                   = InvalidError("value cannot be represented as xfl")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingAccount               = InvalidError("missing account")
	MissingDestination           = InvalidError("missing destination account")
	MissingHooks                 = InvalidError("missing hooks")
	MissingParameters            = InvalidError("missing parameters")
	MissingSecret                = InvalidError("missing secret")
	MissingURI                   = InvalidError("missing uri")
	MissingURITokenID            = InvalidError("missing uri token id")
	NotInitialised               = NotFoundError("not initialised")
	NotRetryable                 = ProcessError("transaction is not retryable")
	RateLimiting                 = ProcessError("rate limiting")
	TooManyGrants                = ProcessError("hook grant list is full")
	TransactionNotFound          = NotFoundError("transaction not found")
	TransactionNotSigned         = NotFoundError("no signed blob retained")
	UnknownField                 = NotFoundError("unknown transaction field")
	UnsupportedAmount            = InvalidError("only native amounts are supported")
	URITokenNotFound             = NotFoundError("uri token not found")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
