package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AwesomeTrading/ordercore/internal/api/dto"
	"github.com/AwesomeTrading/ordercore/internal/codec"
	"github.com/AwesomeTrading/ordercore/internal/core"
	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/middleware"
)

type HTTPServer struct {
	Eng *core.Engine
}

func NewHTTPServer(eng *core.Engine) *HTTPServer {
	return &HTTPServer{Eng: eng}
}

func (s *HTTPServer) Run(addr string) error {
	r := gin.Default()

	// Middleware rate-limiting
	rl := middleware.NewRateLimiter(time.Millisecond * 100)
	r.Use(rl.Middleware())

	s.register(r)
	return r.Run(addr)
}

func (s *HTTPServer) register(r *gin.Engine) {
	r.POST("/events", s.processEvent)
	r.GET("/orders/:client_order_id", s.getOrder)
	r.GET("/orders/:client_order_id/events", s.getEvents)
	r.POST("/orders/:client_order_id/replay", s.replayOrder)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
}

// processEvent ingests one lifecycle event. The body is the tagged JSON
// envelope, e.g. {"type":"OrderAccepted", ...}.
func (s *HTTPServer) processEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, err := codec.DecodeJSON(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.Eng.Process(c.Request.Context(), ev)
	if err != nil {
		status := http.StatusInternalServerError
		var terr *domain.TransitionError
		switch {
		case errors.As(err, &terr):
			status = http.StatusConflict
		case errors.Is(err, core.ErrOrderNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ProcessEventResponse{
		ClientOrderID: string(ev.GetClientOrderID()),
		EventType:     ev.EventType(),
		Order:         convertOrder(order),
	})
}

func (s *HTTPServer) getOrder(c *gin.Context) {
	id := domain.ClientOrderID(c.Param("client_order_id"))
	o, err := s.Eng.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.GetOrderResponse{Order: convertOrder(o)})
}

func (s *HTTPServer) getEvents(c *gin.Context) {
	id := domain.ClientOrderID(c.Param("client_order_id"))
	events, err := s.Eng.History(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := dto.GetEventsResponse{ClientOrderID: string(id)}
	for _, ev := range events {
		raw, err := codec.EncodeJSON(ev)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Events = append(resp.Events, raw)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) replayOrder(c *gin.Context) {
	id := domain.ClientOrderID(c.Param("client_order_id"))
	o, err := s.Eng.Replay(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ReplayResponse{
		ClientOrderID: string(id),
		EventCount:    o.EventCount,
		Order:         convertOrder(o),
	})
}

func convertOrder(o domain.Order) dto.Order {
	res := dto.Order{
		TraderID:      o.TraderID.String(),
		StrategyID:    o.StrategyID.String(),
		InstrumentID:  o.InstrumentID.String(),
		ClientOrderID: o.ClientOrderID.String(),
		VenueOrderID:  o.VenueOrderID.String(),
		AccountID:     o.AccountID.String(),
		Side:          string(o.Side),
		Type:          string(o.Type),
		TimeInForce:   string(o.TimeInForce),
		Quantity:      o.Quantity.String(),
		Status:        string(o.Status),
		FilledQty:     o.FilledQty.String(),
		LeavesQty:     o.LeavesQty().String(),
		AvgPx:         o.AvgPx.String(),
		Reason:        o.Reason,
		LastEventID:   string(o.LastEventID),
		LastTsEvent:   int64(o.LastTsEvent),
		TsInit:        int64(o.TsInit),
		EventCount:    o.EventCount,
	}
	if o.Price != nil {
		res.Price = o.Price.String()
	}
	if o.TriggerPrice != nil {
		res.TriggerPrice = o.TriggerPrice.String()
	}
	return res
}
