package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abhisek/parlo/internal/session"
)

// vocabListQuery mirrors the service's get_study_list document.
const vocabListQuery = `query VocabList($awesomeId: Int!, $limit: Int!) {
  getStudyList(awesomeId: $awesomeId, limit: $limit) {
    vocabId
    vocabStudyId
    prompt
    firstLang
    pos
    infinitive
    hint
    userNotes
    numLearningWords
  }
}`

// checkAnswerMutation grades a single answer and yields the verdict
// text.
const checkAnswerMutation = `mutation CheckAnswer($vocabId: Int!, $vocabStudyId: Int!, $entry: String!) {
  checkVocabAnswer(vocabId: $vocabId, vocabStudyId: $vocabStudyId, entry: $entry)
}`

// Client talks to the study service's GraphQL endpoint over HTTP.
// It performs no retries; a failed operation is reported once and the
// learner decides whether to try again.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ Service = (*Client)(nil)

// NewClient creates a client for the given GraphQL endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchBatch implements Service.
func (c *Client) FetchBatch(ctx context.Context, learnerID, limit int) ([]session.Challenge, error) {
	data, err := c.post(ctx, vocabListQuery, map[string]any{
		"awesomeId": learnerID,
		"limit":     limit,
	})
	if err != nil {
		return nil, err
	}
	return decodeBatch(data)
}

// SubmitAnswer implements Service.
func (c *Client) SubmitAnswer(ctx context.Context, ch session.Challenge, answer string) (string, error) {
	data, err := c.post(ctx, checkAnswerMutation, map[string]any{
		"vocabId":      ch.VocabID,
		"vocabStudyId": ch.VocabStudyID,
		"entry":        answer,
	})
	if err != nil {
		return "", err
	}

	var payload struct {
		CheckVocabAnswer string `json:"checkVocabAnswer"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", &ErrMalformedResponse{Body: data, Err: err}
	}
	if payload.CheckVocabAnswer == "" {
		return "", &ErrMalformedResponse{Body: data, Err: errors.New("empty verdict")}
	}
	return payload.CheckVocabAnswer, nil
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// post sends one GraphQL request and unwraps the response envelope,
// mapping each failure mode to its error type.
func (c *Client) post(ctx context.Context, query string, vars map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &ErrTransport{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrTransport{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrTransport{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ErrTransport{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var envelope gqlEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ErrMalformedResponse{Body: body, Err: err}
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, ge := range envelope.Errors {
			msgs[i] = ge.Message
		}
		return nil, &ErrRemote{Messages: msgs}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, &ErrMalformedResponse{Body: body, Err: errors.New("missing data field")}
	}
	return envelope.Data, nil
}

// decodeBatch validates and decodes a study-list payload.
func decodeBatch(data json.RawMessage) ([]session.Challenge, error) {
	if err := validateBatch(data); err != nil {
		return nil, err
	}

	var payload struct {
		GetStudyList []struct {
			VocabID          int    `json:"vocabId"`
			VocabStudyID     int    `json:"vocabStudyId"`
			Prompt           string `json:"prompt"`
			FirstLang        string `json:"firstLang"`
			Pos              string `json:"pos"`
			Infinitive       string `json:"infinitive"`
			Hint             string `json:"hint"`
			UserNotes        string `json:"userNotes"`
			NumLearningWords int    `json:"numLearningWords"`
		} `json:"getStudyList"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &ErrMalformedResponse{Body: data, Err: err}
	}

	challenges := make([]session.Challenge, 0, len(payload.GetStudyList))
	for _, item := range payload.GetStudyList {
		challenges = append(challenges, session.Challenge{
			VocabID:          item.VocabID,
			VocabStudyID:     item.VocabStudyID,
			Prompt:           item.Prompt,
			FirstLang:        item.FirstLang,
			PartOfSpeech:     item.Pos,
			Infinitive:       item.Infinitive,
			Hint:             item.Hint,
			UserNotes:        item.UserNotes,
			NumLearningWords: item.NumLearningWords,
		})
	}
	return challenges, nil
}
