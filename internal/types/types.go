// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// Deliverability

type AnalyzeRequest struct {
	Content string `json:"content"`
}

type AnalyzeResponse struct {
	Score                 int      `json:"score"`
	SpamWarnings          []string `json:"spamWarnings"`
	CompatibilityWarnings []string `json:"compatibilityWarnings"`
	AccessibilityWarnings []string `json:"accessibilityWarnings"`
}

type FixImagesRequest struct {
	Content string `json:"content"`
}

type FixImagesResponse struct {
	Content string `json:"content"`
	Changed bool   `json:"changed"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name           string `json:"name"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	VariantSubject string `json:"variantSubject,optional"`
}

type Campaign struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Subject        string `json:"subject"`
	Status         string `json:"status"`
	VariantSubject string `json:"variantSubject,omitempty"`
	Score          int    `json:"score"`
	CreatedAt      string `json:"createdAt"`
	SentAt         string `json:"sentAt,omitempty"`
}

type CreateCampaignResponse struct {
	Campaign Campaign        `json:"campaign"`
	Report   AnalyzeResponse `json:"report"`
}

type ListCampaignsRequest struct {
	Status string `form:"status,optional"`
	Limit  int    `form:"limit,default=50"`
}

type ListCampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
	Count     int        `json:"count"`
}

type GetCampaignRequest struct {
	Id string `path:"id"`
}

type GetCampaignResponse struct {
	Campaign Campaign        `json:"campaign"`
	Content  string          `json:"content"`
	Preview  string          `json:"preview"`
	Report   AnalyzeResponse `json:"report"`
}

type SendCampaignRequest struct {
	Id          string `path:"id"`
	ScheduledAt string `json:"scheduledAt,optional"`
}

type SendCampaignResponse struct {
	Id         string `json:"id"`
	JobId      string `json:"jobId"`
	Status     string `json:"status"`
	Recipients int    `json:"recipients"`
	Suppressed int    `json:"suppressed"`
}

type PickWinnerRequest struct {
	Id string `path:"id"`
}

type PickWinnerResponse struct {
	Winner     string  `json:"winner"`
	Conclusive bool    `json:"conclusive"`
	Reason     string  `json:"reason"`
	OpenRateA  float64 `json:"openRateA"`
	OpenRateB  float64 `json:"openRateB"`
	ClickRateA float64 `json:"clickRateA"`
	ClickRateB float64 `json:"clickRateB"`
}

// Subscribers

type SubscriberInput struct {
	Email string `json:"email"`
	Name  string `json:"name,optional"`
}

type ImportSubscribersRequest struct {
	Subscribers []SubscriberInput `json:"subscribers"`
}

type ImportSubscribersResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ListSubscribersRequest struct {
	Limit int `form:"limit,default=100"`
}

type Subscriber struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type ListSubscribersResponse struct {
	Subscribers []Subscriber `json:"subscribers"`
	Count       int          `json:"count"`
}

// Suppressions

type AddSuppressionRequest struct {
	Email  string `json:"email"`
	Reason string `json:"reason,optional"`
}

type AddSuppressionResponse struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type ListSuppressionsRequest struct {
	Limit int `form:"limit,default=100"`
}

type Suppression struct {
	Email     string `json:"email"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

type ListSuppressionsResponse struct {
	Suppressions []Suppression `json:"suppressions"`
	Count        int           `json:"count"`
}

// Audit

type ListAuditRequest struct {
	Type   string `form:"type,optional"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

type AuditEvent struct {
	Id        string `json:"id"`
	SubjectId string `json:"subjectId"`
	EventType string `json:"eventType"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

type ListAuditResponse struct {
	Events []AuditEvent `json:"events"`
	Count  int          `json:"count"`
}

// Stats

type StatsResponse struct {
	Total       int64 `json:"total"`
	Queued      int64 `json:"queued"`
	Sent        int64 `json:"sent"`
	Failed      int64 `json:"failed"`
	Suppressed  int64 `json:"suppressed"`
	Subscribers int64 `json:"subscribers"`
	Campaigns   int   `json:"campaigns"`
}
