// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2025 The LineageOS Project
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package i18n marks user-visible strings for translation. There is no
// translation catalog hooked up at this point, G is a marker so that
// one can be added without touching every caller.
package i18n

// G is the shorthand for Gettext.
func G(msgid string) string {
	return msgid
}

// NG is the shorthand for NGettext.
func NG(msgid string, msgidPlural string, n uint32) string {
	if n == 1 {
		return msgid
	}
	return msgidPlural
}
