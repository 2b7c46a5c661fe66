package httphandlers

import (
	"time"

	"gitlab.com/TitanInd/crowdfunding/internal/session"
)

type ConfigResponse struct {
	Version string
	Config  interface{}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"      binding:"required"`
	Deadline    string `json:"deadline"    binding:"required"`
	Image       string `json:"image"`
}

// ToForm converts the request to a campaign form. The deadline is either RFC3339 or
// a calendar date, taken as midnight UTC.
func (r *CreateCampaignRequest) ToForm() (session.CampaignForm, error) {
	deadline, err := parseDeadline(r.Deadline)
	if err != nil {
		return session.CampaignForm{}, err
	}
	return session.CampaignForm{
		Title:       r.Title,
		Description: r.Description,
		Target:      r.Target,
		Deadline:    deadline,
		Image:       r.Image,
	}, nil
}

func parseDeadline(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

type DonateRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type CampaignsResponse struct {
	Campaigns []session.Campaign `json:"campaigns"`
}

type DonationsResponse struct {
	Donations []session.Donation `json:"donations"`
}

type SubmissionsResponse struct {
	Submissions []session.Submission `json:"submissions"`
}
