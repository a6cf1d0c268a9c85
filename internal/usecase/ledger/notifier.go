package ledger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/00hello/transaction-handler-microservice/internal/domain"
)

// writeWait bounds every watcher write. A stalled connection errors out and
// is dropped instead of holding the notifier lock.
const writeWait = 5 * time.Second

// wsMessage is the envelope pushed to account watchers.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Notifier tracks websocket watchers per account and pushes state changes to
// them. Its mutex also serializes writes, since a gorilla connection allows
// only one concurrent writer.
type Notifier struct {
	clients map[string]map[*websocket.Conn]bool
	mu      sync.Mutex
	logger  *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{
		clients: make(map[string]map[*websocket.Conn]bool),
		logger:  logger,
	}
}

func (n *Notifier) Register(accountID string, conn *websocket.Conn) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.clients[accountID] == nil {
		n.clients[accountID] = make(map[*websocket.Conn]bool)
	}
	n.clients[accountID][conn] = true
}

func (n *Notifier) Unregister(accountID string, conn *websocket.Conn) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if conns, ok := n.clients[accountID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(n.clients, accountID)
		}
	}
}

// SendState writes the current state of one account to a single connection,
// for the snapshot sent on connect and on explicit client request.
func (n *Notifier) SendState(conn *websocket.Conn, st domain.AccountState) {
	n.mu.Lock()
	defer n.mu.Unlock()

	payload, _ := json.Marshal(wsMessage{Type: "initial_state", Data: st})
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		n.logger.Warn("Failed to send account state", zap.String("account", st.ID), zap.Error(err))
	}
}

// NotifyTransfer pushes the post-transfer state of both parties to everyone
// watching either account.
func (n *Notifier) NotifyTransfer(res *domain.TransferResult) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.push(res.Sender)
	n.push(res.Receiver)
}

// push writes st to every watcher of st.ID, dropping connections whose writes
// fail. Callers must hold n.mu.
func (n *Notifier) push(st domain.AccountState) {
	payload, _ := json.Marshal(wsMessage{Type: "account_update", Data: st})

	for conn := range n.clients[st.ID] {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			n.logger.Warn("Dropping websocket watcher", zap.String("account", st.ID), zap.Error(err))
			conn.Close()
			delete(n.clients[st.ID], conn)
		}
	}
}
