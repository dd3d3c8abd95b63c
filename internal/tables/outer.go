package tables

// Load returns the default decode tables for the combined BT/802.15.4
// firmware log format.
func Load() *Tables {
	return &Tables{
		Outer:        outerDefaults(),
		Enums:        enumDefaults(),
		Opcodes:      hciOpcodes(),
		Levels:       levelDefaults(),
		InnerNames:   innerNames(),
		GeneralNames: map[byte]string{},
		InnerRules:   innerRules(),
		InnerEnums:   innerEnums(),
		InnerFlags:   innerFlags(),
	}
}

func outerDefaults() map[string]OuterRule {
	m := map[string]OuterRule{
		"00": {Name: "pure_data", Kind: KindPureData},
		"01": {Name: "hci_command", Kind: KindOpcodePair},
		"02": {Name: "hci_event", Kind: KindEnumLookup, Enum: "hci_event"},
		"03": {Name: "lmp_pdu", Kind: KindEnumLookup, Enum: "lmp_opcode", TxPrefix: "tx:", RxPrefix: "rx:"},
		"04": {Name: "le_ll_control_pdu", Kind: KindEnumLookup, Enum: "ll_control", TxPrefix: "tx:", RxPrefix: "rx:"},
		"05": {Name: "le_adv_pdu", Kind: KindEnumLookup, Enum: "adv_pdu", TxPrefix: "tx:", RxPrefix: "rx:"},
		"06": {Name: "le_tx_rx_len", Kind: KindVerbatim, Label: "le_len ", Body: BodyHex, TxPrefix: "tx:", RxPrefix: "rx:"},
		"07": {Name: "acl_data", Kind: KindVerbatim, Body: BodyHex, TxPrefix: "tx_data:", RxPrefix: "rx_data:"},
		"08": {Name: "sco_data", Kind: KindVerbatim, Body: BodyHex, TxPrefix: "tx_data:", RxPrefix: "rx_data:"},
		"09": {Name: "seqn_msg", Kind: KindVerbatim, Body: BodyHex, TxPrefix: "tx_seqn:", RxPrefix: "rx_seqn:"},
		"0a": {Name: "ack_nak", Kind: KindEnumLookup, Enum: "ack_nak", TxPrefix: "tx_ack:", RxPrefix: "rx_ack:"},
		"0b": {Name: "link_id", Kind: KindVerbatim, Body: BodyHex, TxPrefix: "tx_link:", RxPrefix: "rx_link:"},
		"0c": {Name: "role_log", Kind: KindEnumLookup, Enum: "piconet_role", Label: "p_role:"},
		"0d": {Name: "packet_type", Kind: KindEnumLookup, Enum: "packet_type", TxPrefix: "tx_pkt:", RxPrefix: "rx_pkt:"},
		"0e": {Name: "enc_dec_counter", Kind: KindVerbatim, Body: BodyHex, TxPrefix: "enc:", RxPrefix: "dec:"},
		"0f": {Name: "classic_le_switch", Kind: KindVerbatim, Body: BodyHex, TxPrefix: "sw_to_cla:", RxPrefix: "sw_to_le:"},
		"10": {Name: "queue_full", Kind: KindVerbatim, Label: "q_full", Body: BodyNone},
		"11": {Name: "version_msg", Kind: KindVerbatim, Label: "version: ", Body: BodyHex},
		"12": {Name: "bt_clock_msg", Kind: KindVerbatim, Label: "bt_clock:: ", Body: BodyHex},
		"7f": {Name: "verify_type", Kind: KindSuppressed},
	}

	// Firmware debug message channels: body byte is the message number
	// within the channel.
	debug := map[string]string{
		"20": "dbg",
		"21": "dbg_pc",
		"22": "dbg_init",
		"23": "[LE]MSG_ISOAL",
		"24": "[LE]MSG_BIG",
		"25": "[LE]MSG_CIG",
		"26": "[LE]MSG_LE_AUDIO",
		"27": "[LE]MSG_PAWR",
		"28": "[LE]MSG_LE_CONN",
		"29": "[LE]MSG_LE_ADV",
		"2a": "[LE]MSG_LE_SCAN",
		"2b": "[LE]MSG_LE_LL",
		"2c": "[LE]MSG_LE_COMM",
		"2d": "[LE]MSG_EVENT_LIST",
		"2e": "[LE]MSG_HOST_IF",
	}
	for key, label := range debug {
		m[key] = OuterRule{Name: label + "_channel", Kind: KindVerbatim, Label: label, Body: BodyDecimal}
	}

	// Digit-log levels: the record's body byte is the inner log type
	// and the following pure-data bytes build the payload word.
	for lvl := range levelDefaults() {
		m[KeyFor(lvl)] = OuterRule{Name: "digit_log", Kind: KindNestedLog, Level: lvl}
	}
	return m
}

func levelDefaults() map[byte]Level {
	return map[byte]Level{
		0x50: {Name: "15p4 general", LPName: "lp general", General: true},
		0x51: {Name: "15p4 performance", LPName: "lp performance"},
		0x52: {Name: "15p4 lp", LPName: "low power"},
		0x53: {Name: "15p4 info", LPName: "lp info"},
		0x54: {Name: "15p4 int", LPName: "lp int"},
		0x55: {Name: "15p4 key", LPName: "lp key"},
		0x56: {Name: "15p4 err_key", LPName: "lp err_key"},
	}
}

func enumDefaults() map[string]map[byte]string {
	return map[string]map[byte]string{
		"ack_nak": {
			0x00: "nak",
			0x01: "ack",
		},
		"piconet_role": {
			0x00: "central",
			0x01: "peripheral",
		},
		"packet_type": {
			0x00: "null",
			0x01: "poll",
			0x02: "fhs",
			0x03: "dm1",
			0x04: "dh1",
			0x05: "hv1",
			0x06: "hv2",
			0x07: "hv3",
			0x08: "dv",
			0x09: "aux1",
			0x0a: "dm3",
			0x0b: "dh3",
			0x0e: "dm5",
			0x0f: "dh5",
		},
		"adv_pdu": {
			0x00: "adv_ind",
			0x01: "adv_direct_ind",
			0x02: "adv_nonconn_ind",
			0x03: "scan_req",
			0x04: "scan_rsp",
			0x05: "connect_ind",
			0x06: "adv_scan_ind",
			0x07: "adv_ext_ind",
			0x08: "aux_connect_rsp",
		},
		"hci_event": {
			0x01: "inquiry_complete",
			0x02: "inquiry_result",
			0x03: "connection_complete",
			0x04: "connection_request",
			0x05: "disconnection_complete",
			0x06: "authentication_complete",
			0x07: "remote_name_request_complete",
			0x08: "encryption_change",
			0x0b: "read_remote_supported_features_complete",
			0x0c: "read_remote_version_information_complete",
			0x0e: "command_complete",
			0x0f: "command_status",
			0x10: "hardware_error",
			0x12: "role_change",
			0x13: "number_of_completed_packets",
			0x14: "mode_change",
			0x16: "pin_code_request",
			0x17: "link_key_request",
			0x18: "link_key_notification",
			0x1a: "data_buffer_overflow",
			0x1b: "max_slots_change",
			0x1c: "read_clock_offset_complete",
			0x1d: "connection_packet_type_changed",
			0x22: "inquiry_result_with_rssi",
			0x2f: "extended_inquiry_result",
			0x3e: "le_meta_event",
		},
		"ll_control": {
			0x00: "ll_connection_update_ind",
			0x01: "ll_channel_map_ind",
			0x02: "ll_terminate_ind",
			0x03: "ll_enc_req",
			0x04: "ll_enc_rsp",
			0x05: "ll_start_enc_req",
			0x06: "ll_start_enc_rsp",
			0x07: "ll_unknown_rsp",
			0x08: "ll_feature_req",
			0x09: "ll_feature_rsp",
			0x0a: "ll_pause_enc_req",
			0x0b: "ll_pause_enc_rsp",
			0x0c: "ll_version_ind",
			0x0d: "ll_reject_ind",
			0x0e: "ll_peripheral_feature_req",
			0x0f: "ll_connection_param_req",
			0x10: "ll_connection_param_rsp",
			0x11: "ll_reject_ext_ind",
			0x12: "ll_ping_req",
			0x13: "ll_ping_rsp",
			0x14: "ll_length_req",
			0x15: "ll_length_rsp",
			0x16: "ll_phy_req",
			0x17: "ll_phy_rsp",
			0x18: "ll_phy_update_ind",
			0x19: "ll_min_used_channels_ind",
			0x1a: "ll_cte_req",
			0x1b: "ll_cte_rsp",
			0x1c: "ll_periodic_sync_ind",
			0x1d: "ll_clock_accuracy_req",
			0x1e: "ll_clock_accuracy_rsp",
			0x1f: "ll_cis_req",
			0x20: "ll_cis_rsp",
			0x21: "ll_cis_ind",
			0x22: "ll_cis_terminate_ind",
			0x23: "ll_power_control_req",
			0x24: "ll_power_control_rsp",
			0x25: "ll_power_change_ind",
			0x26: "ll_subrate_req",
			0x27: "ll_subrate_ind",
		},
		"lmp_opcode": {
			0x01: "lmp_name_req",
			0x02: "lmp_name_res",
			0x03: "lmp_accepted",
			0x04: "lmp_not_accepted",
			0x05: "lmp_clkoffset_req",
			0x06: "lmp_clkoffset_res",
			0x07: "lmp_detach",
			0x08: "lmp_in_rand",
			0x09: "lmp_comb_key",
			0x0a: "lmp_unit_key",
			0x0b: "lmp_au_rand",
			0x0c: "lmp_sres",
			0x0d: "lmp_temp_rand",
			0x0e: "lmp_temp_key",
			0x0f: "lmp_encryption_mode_req",
			0x10: "lmp_encryption_key_size_req",
			0x11: "lmp_start_encryption_req",
			0x12: "lmp_stop_encryption_req",
			0x13: "lmp_switch_req",
			0x14: "lmp_hold",
			0x15: "lmp_hold_req",
			0x17: "lmp_sniff_req",
			0x18: "lmp_unsniff_req",
			0x1b: "lmp_incr_power_req",
			0x1c: "lmp_decr_power_req",
			0x1d: "lmp_max_power",
			0x1e: "lmp_min_power",
			0x1f: "lmp_auto_rate",
			0x20: "lmp_preferred_rate",
			0x21: "lmp_version_req",
			0x22: "lmp_version_res",
			0x23: "lmp_features_req",
			0x24: "lmp_features_res",
			0x25: "lmp_quality_of_service",
			0x26: "lmp_quality_of_service_req",
			0x27: "lmp_sco_link_req",
			0x28: "lmp_remove_sco_link_req",
			0x29: "lmp_max_slot",
			0x2a: "lmp_max_slot_req",
			0x2b: "lmp_timing_accuracy_req",
			0x2c: "lmp_timing_accuracy_res",
			0x2d: "lmp_setup_complete",
			0x2e: "lmp_use_semi_permanent_key",
			0x2f: "lmp_host_connection_req",
			0x30: "lmp_slot_offset",
			0x31: "lmp_page_mode_req",
			0x32: "lmp_page_scan_mode_req",
			0x33: "lmp_supervision_timeout",
			0x34: "lmp_test_activate",
			0x35: "lmp_test_control",
			0x36: "lmp_encryption_key_size_mask_req",
			0x37: "lmp_encryption_key_size_mask_res",
			0x38: "lmp_set_afh",
			0x39: "lmp_encapsulated_header",
			0x3a: "lmp_encapsulated_payload",
			0x3b: "lmp_simple_pairing_confirm",
			0x3c: "lmp_simple_pairing_number",
			0x3d: "lmp_dhkey_check",
			0x3e: "lmp_pause_encryption_aes_req",
		},
	}
}

// hciOpcodes maps 16-bit HCI command opcodes (OGF<<10 | OCF) to names.
// The firmware logs the two opcode bytes high-first across two records.
func hciOpcodes() map[uint16]string {
	return map[uint16]string{
		0x0401: "inquiry",
		0x0402: "inquiry_cancel",
		0x0405: "create_connection",
		0x0406: "disconnect",
		0x0408: "create_connection_cancel",
		0x0409: "accept_connection_request",
		0x040a: "reject_connection_request",
		0x040b: "link_key_request_reply",
		0x040c: "link_key_request_negative_reply",
		0x0411: "authentication_requested",
		0x0413: "set_connection_encryption",
		0x0419: "remote_name_request",
		0x041b: "read_remote_supported_features",
		0x041d: "read_remote_version_information",
		0x041f: "read_clock_offset",
		0x0803: "sniff_mode",
		0x0804: "exit_sniff_mode",
		0x080b: "switch_role",
		0x080d: "write_link_policy_settings",
		0x0c01: "set_event_mask",
		0x0c03: "reset",
		0x0c05: "set_event_filter",
		0x0c13: "write_local_name",
		0x0c14: "read_local_name",
		0x0c18: "write_page_timeout",
		0x0c1a: "write_scan_enable",
		0x0c24: "write_class_of_device",
		0x0c33: "host_buffer_size",
		0x0c56: "write_simple_pairing_mode",
		0x1001: "read_local_version_information",
		0x1002: "read_local_supported_commands",
		0x1003: "read_local_supported_features",
		0x1005: "read_buffer_size",
		0x1009: "read_bd_addr",
		0x1405: "read_rssi",
		0x2001: "le_set_event_mask",
		0x2002: "le_read_buffer_size",
		0x2005: "le_set_random_address",
		0x2006: "le_set_advertising_parameters",
		0x2008: "le_set_advertising_data",
		0x2009: "le_set_scan_response_data",
		0x200a: "le_set_advertising_enable",
		0x200b: "le_set_scan_parameters",
		0x200c: "le_set_scan_enable",
		0x200d: "le_create_connection",
		0x200e: "le_create_connection_cancel",
		0x2013: "le_connection_update",
		0x2016: "le_read_remote_features",
		0x2022: "le_set_data_length",
	}
}
