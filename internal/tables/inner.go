package tables

import "strconv"

// Inner digit-log tables. The non-general levels (performance, lp,
// info, int, key, err_key) share one inner type name space: the
// protocol/stack range below 0xc0 and the low-power range at 0xc0 and
// above.

func innerNames() map[byte]string {
	return map[byte]string{
		0x00: "version",
		0x01: "rf_interrupt",
		0x02: "uart_interrupt",
		0x03: "timer",
		0x04: "channel",
		0x05: "ack_handle",
		0x06: "ack_send, fp",
		0x07: "beacon_send, bsn",
		0x08: "cmd_id",
		0x09: "frame_rx_status",
		0x0a: "frame_tx",
		0x0b: "frame_rx",
		0x0c: "frame_pending_tx",
		0x0d: "frame_tx_status",
		0x0e: "incoming_superframe_status",
		0x0f: "outgoing_superframe_status",
		0x10: "primitives_recv",
		0x11: "primitives_send",
		0x12: "beacon_status",
		0x13: "coex_status",
		0x14: "beacon_check",
		0x15: "pib_info",
		0x16: "comm_status_ind",
		0x17: "cap_remain",
		0x18: "time_margin",
		0x19: "msdu_handle",
		0x1a: "pending_frame_remove",
		0x1b: "pending_frame_lookup",
		0x1c: "task_msg_id",
		0x1d: "sys_status",
		0x1e: "tick",
		0x1f: "start_time",
		0x20: "test_num",
		0x21: "32k_clk",
		0x22: "dbg",
		0x23: "test",
		0x24: "len",
		0x25: "mic_32",
		0x26: "sec_in",
		0x27: "sec_out",
		0x28: "count",
		0x29: "timeout",
		0x2a: "mode",
		0x2b: "filter mismatch",
		0x2c: "msg_length",
		0x2d: "rd_ptr",
		0x2e: "wr_ptr",
		0x2f: "sys_time(us)",
		0x30: "sys_time(slot)",
		0x31: "warning",
		0x32: "index",
		0x33: "assert: malloc failed",
		0x34: "assert: stack overflow",
		0x35: "assert",
		0x36: "exception",
		0x37: "nmi",
		0x38: "mcause",
		0x39: "sp",
		0x3a: "pc",
		0x3b: "mstatus",
		0x3c: "msubm",
		0x3d: "scan_cfm malloc failed",
		0x3e: "beacon received in other time",
		0x3f: "uart crc error",
		0x40: "rf crc error",
		0x41: "frame len is too short",
		0x42: "frame counter error",
		0x43: "create timer failed",
		0x44: "invalid timer id",
		0x45: "out of max timeout",
		0x46: "invalid cmd id",
		0x47: "mac_status",
		0x48: "beacon_send_in_nonbeacon_pan",
		0x49: "beacon_send_in_beacon_pan",
		0x4a: "beacon_tx_start",
		0x4b: "primitives_status",
		0x4c: "mac_error",
		0x4d: "primitives_msg_recv",
		0x4e: "primitives_msg_send",
		0x4f: "cmd_decode",
		0x50: "data_decode",
		0x51: "beacon_decode",
		0x52: "sec_incoming",
		0x53: "sec_outgoing",
		0x54: "rx_msg_buff malloc failed",
		0x55: "task_msg_buff malloc failed",
		0x56: "timeout_msg_buff malloc failed",
		0x57: "sec_frame_buf malloc failed",
		0x58: "pending_frame_lookup_association_rsp",
		0x59: "stack high water mark",
		0x5a: "top of stack",
		0x5c: "periodic poll req",
		0x5d: "wifi_coex_mode",
		0x5e: "assert_id",
		0x5f: "assert_data",
		0x60: "force_switch_to_bt",
		0x80: "network_type",
		0x81: "msg",
		0x82: "index",
		0x83: "task_remain",
		0x84: "time_min",
		0x85: "time_max",
		0x86: "time_percentage",
		0x87: "time_total_us",
		0x88: "arbitrate result",
		0x89: "broadcast update",
		0x8a: "forward status",
		0x8b: "network mesh header",
		0x8c: "nwk aux sec error",
		0x8d: "nwk link table age",
		0x8e: "nwk route id seq age",
		0x8f: "tx empty",
		0x90: "timer task remain",
		0x91: "zigbee forward status",
		0x92: "zigbee network header",
		0xc0: "bt_native_clk",
		0xc1: "sleep_status",
		0xc2: "sleep_cycle",
		0xc3: "sleep_domain",
		0xc4: "bt_num_links",
		0xc5: "le_num_links",
		0xc6: "lp_status",
		0xc7: "bt_wake_key",
		0xc8: "le_suspend_start_scan",
		0xc9: "15p4_check_status",
		0xca: "bt_check_status",
		0xcb: "error_reason",
		0xcc: "wake_src",
		0xcd: "lp_stack",
		0xce: "wifi_wake_bt_cnt",
		0xcf: "lp_sleep_info",
		0xe0: "wake_start",
		0xe1: "pmu_wake_done",
		0xe2: "wake_end",
		0xe3: "trx_start",
		0xe4: "trx_end",
		0xe5: "sleep_req",
	}
}

func innerRules() map[byte]InnerRule {
	m := map[byte]InnerRule{
		0x01: {Kind: InnerFlags, Enum: "rf_interrupt"},
		0x02: {Kind: InnerFlags, Enum: "uart_interrupt"},
		0x03: {Kind: InnerEnum, Enum: "timer_id"},
		0x04: {Kind: InnerEnum, Enum: "channel"},
		0x05: {Kind: InnerEnum, Enum: "sys_status"},
		0x08: {Kind: InnerEnum, Enum: "cmd_id"},
		0x09: {Kind: InnerEnum, Enum: "frame_rx_status"},
		0x0a: {Kind: InnerFrameTx},
		0x0b: {Kind: InnerFrameRx},
		0x0c: {Kind: InnerFramePendingTx},
		0x0d: {Kind: InnerEnum, Enum: "frame_tx_status"},
		0x0e: {Kind: InnerEnum, Enum: "superframe_rx"},
		0x0f: {Kind: InnerEnum, Enum: "superframe_tx"},
		0x10: {Kind: InnerEnum, Enum: "primitive_id"},
		0x11: {Kind: InnerEnum, Enum: "primitive_id"},
		0x12: {Kind: InnerEnum, Enum: "beacon_status"},
		0x13: {Kind: InnerEnum, Enum: "coex_status"},
		0x14: {Kind: InnerEnum, Enum: "mac_error"},
		0x15: {Kind: InnerPibInfo},
		0x16: {Kind: InnerEnum, Enum: "mac_status"},
		0x1a: {Kind: InnerPendingRemove},
		0x1c: {Kind: InnerEnum, Enum: "msg_id"},
		0x1d: {Kind: InnerEnum, Enum: "sys_status"},
		0x1e: {Kind: InnerTick},
		0x2b: {Kind: InnerEnum, Enum: "mac_error"},
		0x44: {Kind: InnerEnum, Enum: "timer_id"},
		0x5c: {Kind: InnerStartStop},
		0x5d: {Kind: InnerCoexMode},
		0x5e: {Kind: InnerEnum, Enum: "assert_id"},
		0x80: {Kind: InnerEnum, Enum: "network_type"},
		0x82: {Kind: InnerDecimal},
		0x83: {Kind: InnerEnum, Enum: "performance_index"},
		0x85: {Kind: InnerDecimal},
		0x86: {Kind: InnerDecimal},
		0x87: {Kind: InnerDecimal},
		0xc1: {Kind: InnerEnum, Enum: "sleep_status"},
		0xc2: {Kind: InnerDecimal},
		0xc4: {Kind: InnerEnum, Enum: "bt_scan_type"},
		0xc6: {Kind: InnerEnum, Enum: "lp_status"},
		0xc9: {Kind: InnerEnum, Enum: "lp_15p4_check"},
		0xca: {Kind: InnerEnum, Enum: "lp_bt_check"},
	}
	// MAC status / error code ranges share one rule each.
	for t := byte(0x47); t <= 0x4b; t++ {
		m[t] = InnerRule{Kind: InnerEnum, Enum: "mac_status"}
	}
	for t := byte(0x4c); t <= 0x53; t++ {
		m[t] = InnerRule{Kind: InnerEnum, Enum: "mac_error"}
	}
	return m
}

func innerFlags() map[string][]Flag {
	return map[string][]Flag{
		"rf_interrupt": {
			{Mask: 1 << 0, Name: "tx_end"},
			{Mask: 1 << 1, Name: "rx_end"},
			{Mask: 1 << 2, Name: "rx_sync"},
			{Mask: 1 << 3, Name: "slot"},
			{Mask: 1 << 4, Name: "csma_fail"},
			{Mask: 1 << 5, Name: "ed_scan"},
			{Mask: 1 << 6, Name: "aes_encrypt_end"},
			{Mask: 1 << 7, Name: "aes_decrypt_end"},
			{Mask: 1 << 8, Name: "timer"},
			{Mask: 1 << 9, Name: "rx_sfd_error"},
		},
		"uart_interrupt": {
			{Mask: 1 << 0, Name: "rx_threshold"},
			{Mask: 1 << 1, Name: "rx_end"},
			{Mask: 1 << 2, Name: "tx_end"},
		},
	}
}

func innerEnums() map[string]map[uint32]string {
	enums := map[string]map[uint32]string{
		"timer_id": {
			0:  "SCAN_TIMEOUT_ID",
			1:  "ASSOCIATION_RSP_TIMEOUT_ID",
			2:  "RX_EN_TIMEOUT_ID",
			3:  "ACK_OR_PENDING_DATA_LOST_TIMEOUT_ID",
			4:  "END_DEVICE_POLL_TIMEOUT_ID",
			5:  "WAKE_HOST_TIMEOUT_ID",
			6:  "SYS_TICK_ID",
			7:  "COEX_TIMEOUT_ID",
			8:  "NWK_THREAD_KEEP_ALIVE_TIMEOUT_ID",
			9:  "BEACON_TX_TIMEOUT_ID",
			10: "OUTGOING_SUPERFRAME_END_TIMEOUT_ID",
			11: "BEACON_RX_TIMEOUT_ID",
			12: "SYNC_TIMEOUT_ID",
			13: "INCOMING_SUPERFRAME_END_TIMEOUT_ID",
			14: "GTS_REQ_DEVICE_TIMEOUT_ID",
			15: "NWK_THREAD_MLE_ADV_AGE_TIMEOUT_ID",
			16: "USB_POLL_PRIMITIVE_ID",
			17: "NWK_ZIGBEE_KEEP_ALIVE_TIMEOUT_ID",
			18: "NWK_ZIGBEE_NEIGHBOR_TABLE_AGE_TIMEOUT_ID",
		},
		"cmd_id": {
			1:  "MAC_CMD_ASSOCIATION_REQ",
			2:  "MAC_CMD_ASSOCIATION_RSP",
			3:  "MAC_CMD_DISASSOCIATION_NOTIFICATION",
			4:  "MAC_CMD_DATA_REQ",
			5:  "MAC_CMD_PANID_CONFLICT_NOTIFICATION",
			6:  "MAC_CMD_ORPHAN_NOTIFICATION",
			7:  "MAC_CMD_BEACON_REQ",
			8:  "MAC_CMD_COORDINATOR_REALIGNMENT",
			9:  "MAC_CMD_GTS_REQ",
			10: "MAC_CMD_POLL_REQ",
			11: "MAC_CMD_PENDING_DATA_REQ",
			12: "MAC_CMD_FAST_ASSOCIATION_REQ",
			13: "MAC_CMD_COORDINATOR_REALIGNMENT_TO_ORPHAN",
		},
		"msg_id": {
			0:  "MSG_ID_UART_RX_INT",
			1:  "MSG_ID_UART_TX_INT",
			2:  "MSG_ID_UART_MSG_SEND",
			3:  "MSG_ID_320US_INT",
			4:  "MSG_ID_EDSCAN_INT",
			5:  "MSG_ID_CSMA_FAIL_INT",
			6:  "MSG_ID_TX_INT",
			7:  "MSG_ID_RX_INT",
			8:  "MSG_ID_TX_FRAME",
			9:  "MSG_ID_GTS_TX_FRAME",
			10: "MSG_ID_COEX_RSP",
			11: "MSG_ID_COEX_NOTIFY",
			12: "MSG_ID_THREAD_BROADCAST",
			13: "MSG_ID_ZIGBEE_BROADCAST",
			14: "MSG_ID_SCAN",
		},
		"superframe_rx": {
			0: "SUPERFRAME_RX_INACTIVE",
			1: "SUPERFRAME_RX_BEACON_ONGOING",
			2: "SUPERFRAME_RX_CAP_ONGOING",
			3: "SUPERFRAME_RX_CFP_ONGOING",
		},
		"superframe_tx": {
			0: "SUPERFRAME_TX_INACTIVE",
			1: "SUPERFRAME_TX_BEACON_ONGOING",
			2: "SUPERFRAME_TX_CAP_ONGOING",
			3: "SUPERFRAME_TX_CFP_ONGOING",
		},
		"beacon_status": {
			0: "SUPERFRAME_NO_BEACON",
			1: "SUPERFRAME_BEACON_NORMAL",
			2: "SUPERFRAME_COORDINATOR_REALIGNMENT_TX",
			3: "SUPERFRAME_WAIT_NEXT_SCH_BEACON",
			4: "SUPERFRAME_BEACON_UPDATE",
		},
		"coex_status": {
			0: "COEX_STATUS_IDLE",
			1: "COEX_STATUS_BT",
			2: "COEX_STATUS_WIFI",
			3: "COEX_STATUS_15P4",
			4: "COEX_STATUS_15P4_ONLY",
			5: "COEX_STATUS_BT_ONLY",
		},
		"frame_type": {
			0: "Beacon",
			1: "Data",
			2: "Ack",
			3: "MAC_Command",
		},
		"frame_tx_status": {
			0: "FRAME_TX_END",
			1: "FRAME_TX_ONGOING",
			2: "FRAME_PENDING_TX_ONGOING",
			3: "FRAME_BEACON_TX_ONGOING",
			4: "FRAME_ACK_TX_ONGOING",
			5: "FRAME_GTS_TX_ONGOING",
		},
		"frame_rx_status": {
			0: "FRAME_RX_END",
			1: "FRAME_RX_ONGOING",
			2: "FRAME_RX_ACK_ONGOING",
			3: "FRAME_RX_PENDING_ONGOING",
		},
		"network_type": {
			0: "ZIGBEE",
			1: "THREAD",
		},
		"performance_index": {
			0: "MAC_INT",
			1: "MAC_UART_INT",
			2: "MAC_TIMER_INT",
			3: "MAC_TASK",
			4: "MAC_UART_TASK",
			5: "LP_TASK",
			6: "MAC_COEX_TIME",
		},
		"sys_status": {
			0:  "SYS_STATUS_IDLE",
			1:  "SYS_STATUS_EDSCAN",
			2:  "SYS_STATUS_ACTIVE_SCAN",
			3:  "SYS_STATUS_PASSIVE_SCAN",
			4:  "SYS_STATUS_ORPHAN_SCAN",
			5:  "SYS_STATUS_START_PAN",
			6:  "SYS_STATUS_COORD_REALIGNMENT",
			7:  "SYS_STATUS_COORD_REALIGNMENT_TO_ORPHAN",
			8:  "SYS_STATUS_ASSOCIATION",
			9:  "SYS_STATUS_DATA_REQ",
			10: "SYS_STATUS_POLL",
			11: "SYS_STATUS_PENDING_DATA_REQ",
			12: "SYS_STATUS_ASSOCIATION_RSP",
			13: "SYS_STATUS_DISASSOCIATION",
			14: "SYS_STATUS_SYNCHRONIZATION",
			15: "SYS_STATUS_DATA_SEND",
			16: "SYS_STATUS_PANID_CONFLICT",
			17: "SYS_STATUS_GTS_REQ",
			18: "SYS_STATUS_FAST_ASSOCIATION",
			19: "SYS_STATUS_RX_NORMAL",
			20: "SYS_STATUS_RX_BEACON_ONGOING",
			21: "SYS_STATUS_TX_BEACON_ONGOING",
		},
		"assert_id": {
			0: "ASSERT_ID_UART_BUSY",
		},
		"sleep_status": {
			0: "SHUTDOWN",
			1: "DEEP_SLEEP",
			2: "SLEEP",
			3: "LIGHT_SLEEP",
			4: "IDLE",
			5: "ACTIVE",
		},
		"bt_scan_type": {
			0: "BT_SCAN_DISABLE",
			1: "BT_INQUIRY_SCAN",
			2: "BT_PAGE_SCAN",
			3: "BT_INQUIRY_PAGE_SCAN",
		},
		"lp_status": {
			0: "LP_IDLE",
			1: "LP_SHUTDOWN",
			2: "LP_SUSPEND",
			3: "LP_SUSPEND_WAIT",
			4: "LP_WAKE_WAIT_RESUME",
			5: "LP_WAKE_IDLE",
			6: "LP_WAKE_START_LOW",
			7: "LP_WAKE_START_HIGH",
			8: "LP_RESUME",
		},
		"lp_15p4_check": {
			0 << 0:  "MAC_SLEEP_EN",
			1 << 0:  "MAC_NORMAL_TX_BUFFER_IS_NOT_EMPTY",
			1 << 1:  "MAC_FRAME_TX_IS_NOT_END",
			1 << 2:  "MAC_FRAME_RX_IS_NOT_END",
			1 << 3:  "MAC_MSG_TX_BUF_IS_NOT_EMPTY",
			1 << 4:  "MAC_MSG_RX_BUF_IS_NOT_EMPTY",
			1 << 5:  "MAC_MSG_TX_IS_NOT_END",
			1 << 6:  "MAC_MSG_RX_IS_NOT_SLEEP",
			1 << 15: "MAC_ALWAYS_ACTIVE",
		},
		"lp_bt_check": {
			0 << 0: "BT_SLEEP_EN",
			1 << 0: "BT_INQUIRY_OR_PAGE_STATE_IS_ACTIVE",
			1 << 1: "BT_INQUIRY_OR_PAGE_SCAN_STATE_IS_ACTIVE",
			1 << 2: "BT_SNIFF_STATE_IS_ACTIVE",
			1 << 3: "LE_CE_IS_ACTIVE",
			1 << 4: "LE_SCAN_IS_ACTIVE",
			1 << 5: "BT_CMD_QUEUE_IS_NOT_EMPTY",
			1 << 6: "BT_HAS_TIMER_EXPIRED",
			1 << 7: "BT_WIFI_CALI_IS_ONGOING",
			1 << 8: "BT_HOST_NOT_ALLOWED_SLEEP",
		},
		"mac_status": {
			0x00: "SUCCESS",
			0x01: "BAD_CHANNEL",
			0x02: "IMPROPER_IE_SECURITY",
			0x03: "UNAVAILABLE_DEVICE",
			0x04: "UNAVAILABLE_SECURITY_LEVEL",
			0x05: "UNSUPPORTED_FEATURE",
			0x0f: "FAILED",
			0x10: "CONDITIONALLY_PASSED",
			0x11: "NO_SECURITY",
			0x12: "ON_TIME_TOO_SHORT",
			0x13: "NO_ENOUGH_TIME",
			0x14: "RETRANSMISSION_FRAME",
			0x15: "NOT_15P4_TIME_SLOT",
			0x16: "TIME_FOR_15P4",
			0xdb: "COUNTER_ERROR",
			0xdc: "IMPROPER_KEY_TYPE",
			0xdd: "IMPROPER_SECURITY_LEVEL",
			0xde: "UNSUPPORTED_LEGACY",
			0xdf: "UNSUPPORTED_SECURITY",
			0xe0: "BEACON_LOST",
			0xe1: "CHANNEL_ACCESS_FAILURE",
			0xe2: "DENIED",
			0xe4: "SECURITY_ERROR",
			0xe5: "FRAME_TOO_LONG",
			0xe6: "INVALID_GTS",
			0xe7: "INVALID_HANDLE",
			0xe8: "INVALID_PARAMETER",
			0xe9: "NO_ACK",
			0xea: "NO_BEACON",
			0xeb: "NO_DATA",
			0xec: "NO_SHORT_ADDRESS",
			0xee: "PAN_ID_CONFLICT",
			0xef: "REALIGNMENT",
			0xf0: "TRANSACTION_EXPIRED",
			0xf1: "TRANSACTION_OVERFLOW",
			0xf3: "UNAVAILABLE_KEY",
			0xf4: "UNSUPPORTED_ATTRIBUTE",
			0xf5: "INVALID_ADDRESS",
			0xf6: "ON_TIME_TOO_LONG",
			0xf7: "PAST_TIME",
			0xf8: "TRACKING_OFF",
			0xf9: "INVALID_INDEX",
			0xfa: "LIMIT_REACHED",
			0xfb: "READ_ONLY",
			0xfc: "SCAN_IN_PROGRESS",
			0xfd: "SUPERFRAME_OVERLAP",
			0xfe: "OTHER_ERR",
		},
		"mac_error": {
			0:  "MAC_OK",
			1:  "MAC_MEM_ALLOCATE_ERR",
			2:  "MAC_MSG_CRC_ERR",
			3:  "MAC_MSG_BUF_FULL_ERR",
			4:  "MAC_MSG_PARAM_ERR",
			5:  "MAC_MSG_HANDLE_VAL_ERR",
			6:  "MAC_MSG_LEN_ERR",
			7:  "MAC_MSG_NOT_ENOUGH_ERR",
			8:  "MAC_BEACON_TYPE_ERR",
			9:  "MAC_SCAN_FILTER_ERR",
			10: "MAC_FRAME_VERSION_ERR",
			11: "MAC_SRC_ADDR_MODE_ERR",
			12: "MAC_DST_ADDR_MODE_ERR",
			13: "MAC_FRAME_LEN_ERR",
			14: "MAC_FRAME_TX_BUF_EMPTY_ERR",
			15: "MAC_COORD_SHORT_ADR_NO_MATCH_ERR",
			16: "MAC_COORD_EXT_ADR_NO_MATCH_ERR",
			17: "MAC_EXT_ADDR_NO_MATCH_ERR",
			18: "MAC_SHORT_ADR_NO_MATCH_ERR",
			19: "MAC_EXTEND_ADR_MATCH_ERR",
			20: "MAC_SHORT_ADR_MATCH_ERR",
			21: "MAC_PAN_ID_NO_MATCH_ERR",
			22: "MAC_SAME_PANID_ERR",
			23: "MAC_BROADCAST_FRAME",
			24: "MAC_PAN_COORDINATOR_PANID_CONFLICT_ERR",
			25: "MAC_DEVICE_PANID_CONFLICT_ERR",
			26: "MAC_PAN_ID_COMPRESS_FIELD_ERR",
			27: "MAC_TIME_MAX_ERR",
			28: "MAC_TIME_PARAM_ERR",
			29: "MAC_TIMEOUT_ERR",
			30: "MAC_SEC_MIC_ERR",
			31: "MAC_SEC_PARAM_ERR",
			32: "MAC_CMD_NOT_MATCH_ERR",
			33: "MAC_ACK_SEQ_NOT_MATCH_ERR",
			34: "MAC_COEX_TIME_IS_NOT_ENOUGH",
			35: "MAC_COEX_WORK_HAS_TO_END",
			36: "MAC_MSG_MISALIGN_ERR",
			37: "MAC_RX_FRAME_TYPE_ERR",
			38: "MAC_CAP_NO_ENOUGH_TIME_ERR",
			39: "MAC_UNEXPECT_FRAME_ERR",
			40: "MAC_GTS_DEALLOCATION_ERR",
			41: "MAC_GTS_ALLOCATED_FULL_ERR",
			42: "MAC_GTS_NO_ENOUGH_TIME_ERR",
		},
		"primitive_id": {
			0:  "MAC_ID_ASSO_REQ",
			1:  "MAC_ID_ASSO_IND",
			2:  "MAC_ID_ASSO_RSP",
			3:  "MAC_ID_ASSO_CFM",
			4:  "MAC_ID_BEACON_NOTIFY_IND",
			5:  "MAC_ID_BEACON_REQ",
			6:  "MAC_ID_BEACON_CFM",
			7:  "MAC_ID_BEACON_REQ_IND",
			8:  "MAC_ID_COMM_STATUS_IND",
			9:  "MAC_ID_DA_SEND_REQ",
			10: "MAC_ID_DA_RECV_IND",
			11: "MAC_ID_DA_CFM",
			12: "MAC_ID_DISASSO_REQ",
			13: "MAC_ID_DISASSO_IND",
			14: "MAC_ID_DISASSO_CFM",
			15: "MAC_ID_GET_PIB_REQ",
			16: "MAC_ID_GET_PIB_CFM",
			17: "MAC_ID_ORPHAN_IND",
			18: "MAC_ID_ORPHAN_RSP",
			19: "MAC_ID_PHY_DETECT_IND",
			20: "MAC_ID_PHY_OP_SWITCH_REQ",
			21: "MAC_ID_PHY_OP_SWITCH_IND",
			22: "MAC_ID_PHY_OP_SWITCH_CFM",
			23: "MAC_ID_POLL_REQ",
			24: "MAC_ID_POLL_CFM",
			25: "MAC_ID_RESET_REQ",
			26: "MAC_ID_RESET_CFM",
			27: "MAC_ID_RX_ENABLE_REQ",
			28: "MAC_ID_RX_ENABLE_CFM",
			29: "MAC_ID_SCAN_REQ",
			30: "MAC_ID_SCAN_CFM",
			31: "MAC_ID_SET_PIB_REQ",
			32: "MAC_ID_SET_PIB_CFM",
			33: "MAC_ID_START_PAN_REQ",
			34: "MAC_ID_START_PAN_CFM",
			35: "MAC_ID_SYNC_REQ",
			36: "MAC_ID_SYNC_LOSS_IND",
			37: "MAC_ID_DATA_REQ",
			38: "MAC_ID_DATA_CFM",
			39: "MAC_ID_DATA_IND",
			40: "MAC_ID_DATA_PURGE_REQ",
			41: "MAC_ID_DATA_PURGE_CFM",
			48: "MAC_ID_SCAN_ED",
			49: "MAC_ID_SCAN_ACTIVE",
			50: "MAC_ID_SCAN_PASSIVE",
			51: "MAC_ID_SCAN_ORPHAN",
			52: "MAC_ID_GTS_REQ",
			53: "MAC_ID_GTS_CFM",
			54: "MAC_ID_GTS_IND",
			55: "MAC_ID_SLEEP_REQ",
			56: "MAC_ID_SCAN_RIT",
			57: "MAC_ID_PENDING_COMM_STATUS_IND",
			58: "MAC_ID_GET_FW_VERSION_REQ",
			59: "MAC_ID_GET_FW_VERSION_CFM",
			60: "MAC_ID_IE_IND",
			61: "MAC_ID_WIFI_BANDWIDTH_IND",
			62: "MAC_ID_POLL_IND",
			63: "MAC_ID_RAW_DATA_REQ",
			64: "MAC_ID_RAW_DATA_CFM",
			65: "MAC_ID_RAW_DATA_IND",
		},
		"pib_id": {
			0x00: "PHY_PIB_ID_CURRENT_CHANNEL",
			0x02: "PHY_PIB_ID_TX_POWER",
			0x03: "PHY_PIB_ID_CCA_MODE",
			0x04: "PHY_PIB_ID_CURRENT_PAGE",
			0x05: "PHY_PIB_ID_CCA_DURATION",
			0x40: "MAC_PIB_ID_EXTENDED_ADDR",
			0x41: "MAC_PIB_ID_ASSOCIATION_PERMIT",
			0x42: "MAC_PIB_ID_AUTO_REQ",
			0x45: "MAC_PIB_ID_BEACON_PAYLOAD",
			0x46: "MAC_PIB_ID_BEACON_PAYLOAD_LEN",
			0x47: "MAC_PIB_ID_BEACON_ORDER",
			0x48: "MAC_PIB_ID_BEACON_TX_TIME",
			0x4a: "MAC_PIB_ID_COORD_EXTENDED_ADDR",
			0x4b: "MAC_PIB_ID_COORD_SHORT_ADDR",
			0x4e: "MAC_PIB_ID_MAX_CSMA_BACKOFFS",
			0x4f: "MAC_PIB_ID_MIN_BE",
			0x50: "MAC_PIB_ID_PAN_ID",
			0x51: "MAC_PIB_ID_PROMISCUOUS_MODE",
			0x52: "MAC_PIB_ID_RX_ON_WHEN_IDLE",
			0x53: "MAC_PIB_ID_SHORT_ADDR",
			0x54: "MAC_PIB_ID_SUPERFRAME_ORDER",
			0x55: "MAC_PIB_ID_TRANSACTION_PERSISTENCE_TIME",
			0x57: "MAC_PIB_ID_MAX_BE",
			0x59: "MAC_PIB_ID_MAX_FRAME_RETRIES",
			0x5a: "MAC_PIB_ID_RSP_WAIT_TIME",
			0x5d: "MAC_PIB_ID_SEC_ENABLE",
			0x69: "MAC_PIB_ID_TX_BSN",
			0x6a: "MAC_PIB_ID_RX_BSN",
			0x6b: "MAC_PIB_ID_TX_DSN",
			0x6c: "MAC_PIB_ID_RX_DSN",
			0x74: "SEC_PIB_ID_FRAME_COUNTER",
			0x7b: "MAC_PIB_ID_DEVICE_TYPE",
			0x7c: "MAC_PIB_ID_LOG_LEVEL_CTRL",
			0x7d: "MAC_PIB_ID_INDIRECT_POLL_RATE",
			0x7e: "MAC_PIB_ID_RSSI",
			0x7f: "MAC_PIB_ID_COEX_STRATEGY",
			0x80: "MAC_PIB_ID_SYS_TIMER",
			0x81: "MAC_PIB_ID_LINK_QUALITY_FLAG",
			0x85: "MAC_PIB_ID_NOTIFY_ALL_BEACON",
			0x86: "MAC_PIB_ID_LIFS_PERIOD",
			0x87: "MAC_PIB_ID_SIFS_PERIOD",
			0x88: "MAC_PIB_ID_GROUP_RX_MODE",
			0x8a: "MAC_PIB_ID_GTS_PERMIT",
			0xa0: "NWK_PIB_ID_MTD_CHILD_ID_TAB",
			0xa1: "NWK_PIB_ID_FTD_CHILD_ID_TAB",
			0xa2: "NWK_PIB_ID_STATIC_ROUTE_TAB",
			0xa3: "NWK_PIB_ID_STATIC_LINK_TAB",
			0xa4: "NWK_PIB_ID_KEEP_ALIVE_BC_INTERVAL",
			0xa5: "NWK_PIB_ID_PARTITION_ID",
			0xa8: "NWK_PIB_ID_LEADER_ROUTER_ID",
			0xa9: "NWK_PIB_ID_ROUTE_ID_SEQUENCE",
			0xb0: "NWK_PIB_ID_ZGB_KEEP_ALIVE_BC_INTERVAL",
			0xb3: "NWK_PIB_ID_ZGB_SEC_MATERIAL_SET",
			0xb4: "NWK_PIB_ID_ZGB_SEC_FRAME_COUNTER",
			0xb5: "NWK_PIB_ID_ZGB_LINK_STATUS_PERIOD",
		},
	}

	// 802.15.4 channel masks: bit n set selects channel n.
	channels := make(map[uint32]string, 16)
	for ch := 11; ch <= 26; ch++ {
		channels[1<<uint(ch)] = "HAL_15P4_CH" + strconv.Itoa(ch)
	}
	enums["channel"] = channels
	return enums
}
