// Package errors provides the standardized error model shared by the workers, the HTTP facade
// and the BPMN error integration.
package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInput          ErrorCode = "INVALID_INPUT"
	ErrCodeUnknownBusinessType   ErrorCode = "UNKNOWN_BUSINESS_TYPE"
	ErrCodeAnalysisFailed        ErrorCode = "ANALYSIS_FAILED"
	ErrCodeCostEstimationFailed  ErrorCode = "COST_ESTIMATION_FAILED"
	ErrCodePolicyFundMatchFailed ErrorCode = "POLICY_FUND_MATCH_FAILED"
	ErrCodeLocationNotFound      ErrorCode = "LOCATION_NOT_FOUND"

	ErrCodeExternalService   ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrCodeTimeout           ErrorCode = "TIMEOUT_ERROR"
	ErrCodeCredentialMissing ErrorCode = "CREDENTIAL_MISSING"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

var knownCodes = []ErrorCode{
	ErrCodeInvalidInput,
	ErrCodeUnknownBusinessType,
	ErrCodeAnalysisFailed,
	ErrCodeCostEstimationFailed,
	ErrCodePolicyFundMatchFailed,
	ErrCodeLocationNotFound,
	ErrCodeExternalService,
	ErrCodeTimeout,
	ErrCodeCredentialMissing,
	ErrCodeInternal,
}

// IsKnownCode reports whether code is one of the declared error codes.
func IsKnownCode(code string) bool {
	for _, c := range knownCodes {
		if string(c) == code {
			return true
		}
	}
	return false
}

// StandardError represents a structured application error. Suggestion always points the user to
// a manual fallback path.
type StandardError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Suggestion string    `json:"suggestion"`
	Retryable  bool      `json:"retryable"`
	Timestamp  time.Time `json:"timestamp"`

	cause *StandardError
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithCause attaches the upstream classification behind e. A nil cause leaves e unchanged.
func (e *StandardError) WithCause(cause *StandardError) *StandardError {
	if cause != nil {
		e.cause = cause
		e.Retryable = e.Retryable || cause.Retryable
	}
	return e
}

// Cause returns the upstream classification, or nil.
func (e *StandardError) Cause() *StandardError {
	return e.cause
}

func (e *StandardError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// Normalize returns err as a *StandardError, wrapping anything unknown as INTERNAL_ERROR.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if goerrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job error variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ConvertToBPMNError maps a StandardError onto the BPMN error thrown to the engine.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnErr := &BPMNError{
		Code:    string(stdErr.Code),
		Message: stdErr.Message,
		Details: stdErr.Details,
		ErrorVariables: map[string]interface{}{
			"errorSuggestion": stdErr.Suggestion,
			"errorCategory":   GetErrorCategory(stdErr.Code),
			"timestamp":       stdErr.Timestamp.Format(time.RFC3339),
		},
	}
	if stdErr.cause != nil {
		bpmnErr.ErrorVariables["upstreamErrorCode"] = string(stdErr.cause.Code)
		bpmnErr.ErrorVariables["upstreamErrorDetails"] = stdErr.cause.Details
	}
	return bpmnErr
}

// GetErrorCategory groups codes for dashboards and log filtering.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "UNKNOWN"):
		return "VALIDATION"
	case strings.Contains(codeStr, "TIMEOUT"):
		return "TIMEOUT"
	case strings.Contains(codeStr, "EXTERNAL") || strings.Contains(codeStr, "CREDENTIAL") ||
		strings.Contains(codeStr, "POLICY_FUND") || strings.Contains(codeStr, "LOCATION"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "ANALYSIS") || strings.Contains(codeStr, "ESTIMATION"):
		return "CALCULATION"
	default:
		return "OTHER"
	}
}

// ==========================
// 3. Error Constructors
// ==========================

func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:       ErrCodeInvalidInput,
		Message:    "입력값이 올바르지 않습니다.",
		Details:    details,
		Suggestion: "입력값을 확인하고 다시 시도해주세요.",
		Timestamp:  time.Now().UTC(),
	}
}

// NewUnknownBusinessTypeError lists the supported categories as the remediation hint.
func NewUnknownBusinessTypeError(businessType string, supported []string) *StandardError {
	return &StandardError{
		Code:       ErrCodeUnknownBusinessType,
		Message:    fmt.Sprintf("'%s' 업종의 벤치마크 데이터가 없습니다.", businessType),
		Details:    fmt.Sprintf("businessType: %s", businessType),
		Suggestion: fmt.Sprintf("지원 업종: %s", strings.Join(supported, ", ")),
		Timestamp:  time.Now().UTC(),
	}
}

func NewAnalysisFailedError(err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeAnalysisFailed,
		Message:    "손익분기점 분석 중 오류가 발생했습니다.",
		Details:    err.Error(),
		Suggestion: "입력값을 확인하고 다시 시도해주세요.",
		Timestamp:  time.Now().UTC(),
	}
}

func NewCostEstimationFailedError(err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeCostEstimationFailed,
		Message:    "창업 비용 산출 중 오류가 발생했습니다.",
		Details:    err.Error(),
		Suggestion: "업종과 지역을 확인하고 다시 시도해주세요.",
		Timestamp:  time.Now().UTC(),
	}
}

// NewPolicyFundMatchFailedError carries the underlying message in Message, as shown to users.
func NewPolicyFundMatchFailedError(err error) *StandardError {
	return &StandardError{
		Code:       ErrCodePolicyFundMatchFailed,
		Message:    fmt.Sprintf("정책지원금 조회 중 오류가 발생했습니다: %s", err.Error()),
		Details:    err.Error(),
		Suggestion: "기업마당(bizinfo.go.kr)에서 직접 검색해보세요.",
		Timestamp:  time.Now().UTC(),
	}
}

func NewLocationNotFoundError(location string, knownAreas []string) *StandardError {
	return &StandardError{
		Code:       ErrCodeLocationNotFound,
		Message:    fmt.Sprintf("위치를 찾을 수 없습니다: %s", location),
		Details:    fmt.Sprintf("location: %s", location),
		Suggestion: fmt.Sprintf("%s 등 주요 상권명을 입력해주세요.", strings.Join(knownAreas, ", ")),
		Timestamp:  time.Now().UTC(),
	}
}

// Generic constructors

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeExternalService,
		Message:    fmt.Sprintf("External service '%s' error", service),
		Details:    err.Error(),
		Suggestion: "잠시 후 다시 시도해주세요.",
		Retryable:  true,
		Timestamp:  time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeTimeout,
		Message:    fmt.Sprintf("Service '%s' timeout", service),
		Details:    err.Error(),
		Suggestion: "잠시 후 다시 시도해주세요.",
		Retryable:  true,
		Timestamp:  time.Now().UTC(),
	}
}

func NewCredentialMissingError(service, envVar string) *StandardError {
	return &StandardError{
		Code:       ErrCodeCredentialMissing,
		Message:    fmt.Sprintf("%s가 설정되지 않았습니다.", envVar),
		Details:    fmt.Sprintf("service: %s", service),
		Suggestion: fmt.Sprintf("환경 변수 %s를 설정해주세요.", envVar),
		Timestamp:  time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeInternal,
		Message:    "Unexpected error",
		Details:    err.Error(),
		Suggestion: "잠시 후 다시 시도해주세요.",
		Timestamp:  time.Now().UTC(),
	}
}
