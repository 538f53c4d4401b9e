// internal/models/policy.go
package models

// RawListingItem is one support-program announcement as published by the bizinfo API.
type RawListingItem struct {
	ID              string `json:"pblancId"`
	Title           string `json:"pblancNm"`
	Summary         string `json:"bsnsSumryCn"`
	Period          string `json:"reqstBeginEndDe"`
	JurisdictionOrg string `json:"jrsdInsttNm"`
	ExecutingOrg    string `json:"excInsttNm"`
	Contact         string `json:"refrncNm,omitempty"`
	URL             string `json:"pblancUrl"`
	Hashtags        string `json:"hashtags"`
	Target          string `json:"trgetNm"`
	Category        string `json:"pldirSportRealmLclasCodeNm,omitempty"`
	SubCategory     string `json:"pldirSportRealmMlsfcCodeNm,omitempty"`
	CreatedAt       string `json:"creatPnttm,omitempty"`
}

type FundType string

const (
	FundTypeLoan      FundType = "loan"
	FundTypeGrant     FundType = "grant"
	FundTypeMentoring FundType = "mentoring"
	FundTypeMixed     FundType = "mixed"
)

var fundTypeLabels = map[FundType]string{
	FundTypeLoan:      "융자",
	FundTypeGrant:     "보조금",
	FundTypeMentoring: "멘토링",
	FundTypeMixed:     "복합",
}

// Label returns the Korean display label.
func (t FundType) Label() string {
	return fundTypeLabels[t]
}

type PolicyFund struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Amount       string   `json:"amount"`
	Type         FundType `json:"type"`
	TypeLabel    string   `json:"typeLabel"`
	Deadline     string   `json:"deadline"`
	Requirements []string `json:"requirements"`
	ApplyURL     string   `json:"applyUrl"`
	Description  string   `json:"description"`
}

// Business stages.
const (
	StagePreLaunch = "예비창업"
	StageEarly     = "초기창업"
	StageOperating = "운영중"
	StageRelaunch  = "재창업"
)

// Founder categories.
const (
	FounderYouth    = "청년"
	FounderSenior   = "중장년"
	FounderWoman    = "여성"
	FounderDisabled = "장애인"
	FounderGeneral  = "일반"
)

type UserProfile struct {
	BusinessType string `json:"businessType"`
	Stage        string `json:"stage"`
	Region       string `json:"region"`
	FounderType  string `json:"founderType,omitempty"`
	FounderAge   *int   `json:"founderAge,omitempty"`
}

type PolicyFundRecommendation struct {
	UserProfile  UserProfile  `json:"userProfile"`
	MatchedFunds []PolicyFund `json:"matchedFunds"`
	TotalCount   int          `json:"totalCount"`
	Tip          string       `json:"tip"`
}
