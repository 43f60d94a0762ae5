package webserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rakyll/statik/fs"

	cnt "github.com/R3DPanda1/envmon/controllers"
	"github.com/R3DPanda1/envmon/models"
	"github.com/R3DPanda1/envmon/monitor"
	"github.com/R3DPanda1/envmon/monitor/events"
	"github.com/R3DPanda1/envmon/socket"
	_ "github.com/R3DPanda1/envmon/webserver/statik"
)

//go:generate statik -src=./ui -dest=. -f

// connSubscriptions holds the active event stream unsubscribe functions for a single socket connection.
type connSubscriptions struct {
	mu    sync.Mutex
	funcs []func()
}

// WebServer represents a web server configuration including address, port, router setup, and server socket.
type WebServer struct {
	Address      string           // Address of the web server
	Port         int              // Port of the web server
	Router       *gin.Engine      // Router of the web server
	ServerSocket *socketio.Server // ServerSocket of the web server
}

// Global variables
var (
	monitorController cnt.MonitorController // monitorController serves every panel request.
	configuration     *models.ServerConfig  // configuration holds the server's configuration settings.
	// socketSubscriptions tracks active event stream unsubscribe functions per socket connection.
	socketSubscriptions sync.Map // map[string]*connSubscriptions keyed by socket ID
)

// NewWebServer creates a new web server instance with the given configuration and monitor controller.
func NewWebServer(config *models.ServerConfig, controller cnt.MonitorController) (*WebServer, error) {
	configuration = config
	monitorController = controller
	serverSocket := newServerSocket()
	// The socket server blocks, so it runs on its own goroutine.
	go func() {
		if err := serverSocket.Serve(); err != nil {
			slog.Error("socket server stopped", "component", "webserver", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	configCors := cors.DefaultConfig()
	configCors.AllowAllOrigins = true
	configCors.AllowHeaders = []string{"Origin", "Access-Control-Allow-Origin",
		"Access-Control-Allow-Headers", "Content-type"}
	configCors.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	configCors.AllowCredentials = true
	router.Use(cors.New(configCors))
	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())

	ws := WebServer{
		Address:      configuration.Address,
		Port:         configuration.Port,
		Router:       router,
		ServerSocket: serverSocket,
	}

	staticFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	staticGroup := router.Group("/dashboard")
	staticGroup.StaticFS("/", staticFS)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/start", startMonitor)          // Start the monitor
		apiRoutes.GET("/stop", stopMonitor)            // Stop the monitor
		apiRoutes.GET("/status", monitorStatus)        // Get the monitor status (running or stopped)
		apiRoutes.GET("/panel", getPanel)              // Get the machine and board snapshot
		apiRoutes.POST("/key", pressKeys)              // Press keypad keys
		apiRoutes.POST("/climate", setClimate)         // Set temperature and humidity
		apiRoutes.POST("/light", setLight)             // Set the light level or raw sample
		apiRoutes.POST("/infrared", setInfrared)       // Set the infrared input
		apiRoutes.POST("/hall", setHall)               // Set the Hall input
		apiRoutes.POST("/fault", setFault)             // Toggle the climate sensor fault
		apiRoutes.GET("/scenarios", getScenarios)      // List built-in scenarios
		apiRoutes.POST("/scenario", loadScenario)      // Load or stop a scenario
		apiRoutes.GET("/events/:topic", getEventTopic) // Get the history of an event topic
	}

	router.GET("/socket.io/*any", gin.WrapH(serverSocket))
	router.POST("/socket.io/*any", gin.WrapH(serverSocket))
	router.GET("/", func(context *gin.Context) { context.Redirect(http.StatusMovedPermanently, "/dashboard") })
	return &ws, nil
}

// newServerSocket creates a new server socket instance and sets up the socket events.
func newServerSocket() *socketio.Server {
	serverSocket := socketio.NewServer(nil)
	serverSocket.OnConnect("/", func(s socketio.Conn) error {
		slog.Debug("socket connected", "component", "webserver", "id", s.ID())
		s.SetContext("")
		// every panel mirrors the display
		stream(s, events.DisplayTopic, socket.EventDisplay, false)
		return nil
	})
	serverSocket.OnDisconnect("/", func(s socketio.Conn, reason string) {
		cleanupSocketSubscriptions(s.ID())
		serverSocket.Remove(s.ID())
		_ = s.Close()
	})
	serverSocket.OnEvent("/", socket.EventKeyPress, func(s socketio.Conn, data socket.KeyPress) string {
		if err := monitorController.PressKeys(data.Keys); err != nil {
			return err.Error()
		}
		return ""
	})
	serverSocket.OnEvent("/", socket.EventStreamEvents, func(s socketio.Conn, req socket.StreamRequest) bool {
		if !events.ValidTopic(req.Topic) {
			return false
		}
		stream(s, req.Topic, socket.EventEvent, true)
		return true
	})
	serverSocket.OnEvent("/", socket.EventStopEvents, func(s socketio.Conn, req socket.StreamRequest) {
		cleanupSocketSubscriptions(s.ID())
		// keep the display mirror
		stream(s, events.DisplayTopic, socket.EventDisplay, false)
	})
	return serverSocket
}

// stream forwards topic events to s. With wrap set, each event is sent as a
// socket.TopicEvent.
func stream(s socketio.Conn, topic, name string, wrap bool) {
	broker := monitorController.GetEventBroker()
	if broker == nil {
		return
	}
	ch, history, unsub := broker.Subscribe(topic)
	addSocketSubscription(s.ID(), unsub)

	emit := func(evt interface{}) {
		if wrap {
			s.Emit(name, socket.TopicEvent{Topic: topic, Event: evt})
			return
		}
		s.Emit(name, evt)
	}
	// Send history first
	for _, evt := range history {
		emit(evt)
	}
	go func() {
		for evt := range ch {
			emit(evt)
		}
	}()
}

func addSocketSubscription(socketID string, unsub func()) {
	val, _ := socketSubscriptions.LoadOrStore(socketID, &connSubscriptions{})
	entry := val.(*connSubscriptions)
	entry.mu.Lock()
	entry.funcs = append(entry.funcs, unsub)
	entry.mu.Unlock()
}

func cleanupSocketSubscriptions(socketID string) {
	val, ok := socketSubscriptions.LoadAndDelete(socketID)
	if !ok {
		return
	}
	entry := val.(*connSubscriptions)
	entry.mu.Lock()
	for _, fn := range entry.funcs {
		fn()
	}
	entry.funcs = nil
	entry.mu.Unlock()
}

// Run starts the web server and listens on the given address and port.
func (ws *WebServer) Run() error {
	fullAddress := ws.Address + ":" + strconv.Itoa(ws.Port)
	slog.Info("webUI listening", "component", "webserver", "address", fullAddress)
	return ws.Router.Run(fullAddress)
}

// --- API Handlers ---

// startMonitor starts the monitor
func startMonitor(c *gin.Context) {
	c.JSON(http.StatusOK, monitorController.Run())
}

// stopMonitor stops the monitor
func stopMonitor(c *gin.Context) {
	c.JSON(http.StatusOK, monitorController.Stop())
}

// monitorStatus returns the status of the monitor
func monitorStatus(c *gin.Context) {
	c.JSON(http.StatusOK, monitorController.Status())
}

func getPanel(c *gin.Context) {
	c.JSON(http.StatusOK, monitorController.Panel())
}

// reply maps a panel input error to a status code.
func reply(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, monitor.ErrNotSimulated), errors.Is(err, monitor.ErrNotRunning):
		c.JSON(http.StatusConflict, gin.H{"status": "Unavailable", "error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"status": "Rejected", "error": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "Invalid request", "error": err.Error()})
}

func pressKeys(c *gin.Context) {
	var data socket.KeyPress
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	reply(c, monitorController.PressKeys(data.Keys))
}

func setClimate(c *gin.Context) {
	var data struct {
		Temperature *float64 `json:"temperature" binding:"required"`
		Humidity    *float64 `json:"humidity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	reply(c, monitorController.SetClimate(*data.Temperature, *data.Humidity))
}

// setLight accepts either a lux value or a raw analog sample.
func setLight(c *gin.Context) {
	var data struct {
		Lux    *float64 `json:"lux"`
		Analog *int     `json:"analog"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	switch {
	case data.Analog != nil:
		reply(c, monitorController.SetAnalog(*data.Analog))
	case data.Lux != nil:
		reply(c, monitorController.SetLight(*data.Lux))
	default:
		badRequest(c, errors.New("lux or analog is required"))
	}
}

type switchRequest struct {
	On bool `json:"on"`
}

func setInfrared(c *gin.Context) {
	var data switchRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	reply(c, monitorController.SetInfrared(data.On))
}

func setHall(c *gin.Context) {
	var data switchRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	reply(c, monitorController.SetHall(data.On))
}

func setFault(c *gin.Context) {
	var data switchRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	reply(c, monitorController.SetFault(data.On))
}

func getScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": monitorController.GetScenarios()})
}

// loadScenario loads a built-in by name, or a custom script. An empty body
// stops the active scenario.
func loadScenario(c *gin.Context) {
	var data struct {
		Name   string `json:"name"`
		Script string `json:"script"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}
	if data.Name == "" && data.Script == "" {
		monitorController.StopScenario()
		c.JSON(http.StatusOK, gin.H{"status": "stopped"})
		return
	}
	if data.Name == "" {
		data.Name = "custom"
	}
	reply(c, monitorController.LoadScenario(data.Name, data.Script))
}

func getEventTopic(c *gin.Context) {
	topic := c.Param("topic")
	if !events.ValidTopic(topic) {
		c.JSON(http.StatusNotFound, gin.H{"status": "Unknown topic", "topics": events.Topics})
		return
	}
	history := monitorController.GetEventBroker().History(topic)
	if history == nil {
		history = []interface{}{}
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "events": history})
}
