// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdag

import (
	"fmt"
)

// NotificationType represents the type of a notification message.
type NotificationType int

// Constants for the type of a notification message.
const (
	// BlockAccepted indicates the associated block was accepted into
	// the block dag.  Note that this does not necessarily mean the block
	// is blue, the color is carried by the notification data.
	BlockAccepted NotificationType = iota
)

// notificationTypeStrings is a map of notification types back to their constant
// names for pretty printing.
var notificationTypeStrings = map[NotificationType]string{
	BlockAccepted: "BlockAccepted",
}

// String returns the NotificationType in human-readable form.
func (n NotificationType) String() string {
	if s, ok := notificationTypeStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Notification Type (%d)", int(n))
}

// BlockAcceptedNotifyData is the structure for data indicating information
// about an accepted block.
type BlockAcceptedNotifyData struct {
	// Block is the block that was accepted into the dag.
	Block IBlock
}

// Notification defines notification that is sent to the caller via the callback
// function provided during the call to Subscribe and consists of a notification
// type as well as associated data that depends on the type as follows:
// 	- BlockAccepted:         *BlockAcceptedNotifyData
type Notification struct {
	Type NotificationType
	Data interface{}
}

// NotificationCallback is used for a caller to provide a callback for
// notifications about various dag events.
type NotificationCallback func(*Notification)

// Subscribe to block dag notifications. Registers a callback to be executed
// when various events take place. See the documentation on Notification and
// NotificationType for details on the types and contents of notifications.
func (bd *BlockDAG) Subscribe(callback NotificationCallback) {
	bd.notificationsLock.Lock()
	bd.notifications = append(bd.notifications, callback)
	bd.notificationsLock.Unlock()
}

// sendNotification sends a notification with the passed type and data if the
// caller requested notifications by providing a callback function in the call
// to Subscribe.
func (bd *BlockDAG) sendNotification(typ NotificationType, data interface{}) {
	// Generate and send the notification.
	n := Notification{Type: typ, Data: data}

	bd.notificationsLock.RLock()
	for _, callback := range bd.notifications {
		callback(&n)
	}
	bd.notificationsLock.RUnlock()
}
