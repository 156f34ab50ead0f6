// Package server exposes the calculation engine as a stateless JSON API.
// Every request carries a complete input snapshot and is independently
// computable; no state is shared between requests.
package server

import (
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/anmacmillan/pensionloss/internal/calculation"
	"github.com/anmacmillan/pensionloss/internal/config"
	"github.com/anmacmillan/pensionloss/internal/domain"
	"github.com/anmacmillan/pensionloss/internal/ogden"
	"github.com/anmacmillan/pensionloss/internal/output"
)

// Server routes calculation requests to the engine.
type Server struct {
	engine *calculation.Engine
	tables ogden.Provider
	log    *zap.Logger
}

// New creates a server around a fresh engine and the demo tables.
func New(log *zap.Logger) *Server {
	eng := calculation.NewEngine()
	eng.SetLogger(config.NewEngineLogger())
	return &Server{
		engine: eng,
		tables: ogden.NewDemoProvider(),
		log:    log,
	}
}

// CalculateResponse is the body returned by POST /calculate.
type CalculateResponse struct {
	Payload   *output.ReportPayload     `json:"payload"`
	Result    *domain.CalculationResult `json:"result"`
	Breakdown domain.AwardBreakdown     `json:"breakdown"`
	Warnings  []string                  `json:"warnings,omitempty"`
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler is the fasthttp request handler for all routes.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/health" && method == fasthttp.MethodGet:
		s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/table" && method == fasthttp.MethodGet:
		s.handleTable(ctx)
	case path == "/calculate" && method == fasthttp.MethodPost:
		s.handleCalculate(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleTable(ctx *fasthttp.RequestCtx) {
	gender, err := domain.ParseGender(string(ctx.QueryArgs().Peek("gender")))
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, s.tables.Table(gender))
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	var cf config.CaseFile
	if err := json.Unmarshal(ctx.PostBody(), &cf); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := cf.Validate(); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	res, err := cf.Evaluate(s.engine, s.tables)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	payload := output.BuildPayload(output.PayloadInput{
		Method:   cf.Method,
		Claimant: cf.Claimant,
		Tax:      cf.Tax,
		Simple:   cf.Simple,
		Complex:  cf.Complex,
		TableRef: cf.TableRef(s.tables),
	}, res)

	s.log.Info("calculation served",
		zap.String("method", string(cf.Method)),
		zap.String("report_id", payload.ReportID),
		zap.String("gross_total", payload.GrossTotal),
	)

	s.writeJSON(ctx, fasthttp.StatusOK, CalculateResponse{
		Payload:   payload,
		Result:    res,
		Breakdown: res.Breakdown(),
		Warnings:  cf.Warnings(),
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	b, err := json.Marshal(body)
	if err != nil {
		s.log.Error("encode response", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(b)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("pension loss API listening", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handler)
}
