package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/career-matcher/internal/parsing"
	"github.com/jonathan/career-matcher/internal/types"
)

// ScoreRequest is the request body for POST /careers/{id}/score
type ScoreRequest struct {
	Profile types.Profile `json:"profile"`
}

// Validate validates the embedded profile.
func (r *ScoreRequest) Validate() error {
	return r.Profile.Validate()
}

// CareersResponse lists catalog entries
type CareersResponse struct {
	Careers []types.Career `json:"careers"`
	Count   int            `json:"count"`
}

// SearchResponse lists keyword search hits
type SearchResponse struct {
	Keywords []string          `json:"keywords"`
	Results  []types.SearchHit `json:"results"`
}

// handleRecommend ranks the catalog against a single profile
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	profile := parsing.NormalizeProfile(req.Profile)
	s.jsonResponse(w, http.StatusOK, types.RecommendResponse{
		Recommendations:     s.engine.Recommend(profile, req.TopN),
		InsufficientProfile: profile.IsInsufficient(),
	})
}

// handleRecommendBatch ranks the catalog against several profiles
func (s *Server) handleRecommendBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRecommendRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := s.engine.RecommendBatch(r.Context(), req.Profiles, req.TopN)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BatchRecommendResponse{Results: results})
}

// handleMergeProfiles unions newly extracted facets into the current profile
func (s *Server) handleMergeProfiles(w http.ResponseWriter, r *http.Request) {
	var req types.MergeProfilesRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, parsing.MergeProfiles(req.Current, req.Incoming))
}

// handleSummary returns an exportable profile summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req types.SummaryRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Summary(req.Profile, req.CareerIDs))
}

// handleListCareers lists the catalog, optionally filtered by ?domain=
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	careers := s.engine.Careers(r.URL.Query().Get("domain"))
	s.jsonResponse(w, http.StatusOK, CareersResponse{Careers: careers, Count: len(careers)})
}

// handleGetCareer returns full details for one career
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	career, err := s.engine.Details(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, career)
}

// handleLearningPath returns the learning roadmap for one career
func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	plan, err := s.engine.LearningPath(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, plan)
}

// handleScoreCareer scores a profile against one career
func (s *Server) handleScoreCareer(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.engine.Score(req.Profile, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListDomains lists the catalog domains
func (s *Server) handleListDomains(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"domains": s.engine.Domains()})
}

// handleSearch runs a keyword search; ?q= takes comma-separated keywords and may repeat
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keywords := make([]string, 0)
	for _, q := range r.URL.Query()["q"] {
		for _, kw := range strings.Split(q, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}

	if len(keywords) == 0 {
		s.writeError(w, r, &ErrValidation{Field: "q", Message: "at least one keyword is required"})
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchResponse{Keywords: keywords, Results: s.engine.Search(keywords)})
}
