// Zaparoo GameTDB
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo GameTDB.
//
// Zaparoo GameTDB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo GameTDB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo GameTDB.  If not, see <http://www.gnu.org/licenses/>.

package catalog

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<datafile>
	<WiiTDB version="20240101" games="4"/>
	<game name="Super Smash Bros. Brawl (USA)">
		<id>RSBE01</id>
		<type></type>
		<region>NTSC-U</region>
		<languages>EN,FR,ES</languages>
		<locale lang="EN">
			<title>Super Smash Bros. Brawl</title>
			<synopsis>Brawl synopsis.</synopsis>
		</locale>
		<locale lang="FR">
			<title>Super Smash Bros. Brawl FR</title>
		</locale>
		<locale lang="EN">
			<title>Duplicate English</title>
		</locale>
		<developer>SORA</developer>
		<publisher>Nintendo</publisher>
		<date year="2008" month="3" day="" />
		<genre>fighting, , party</genre>
		<rating type="ESRB" value="T">
			<descriptor>cartoon violence</descriptor>
			<descriptor>comic mischief</descriptor>
		</rating>
		<wi-fi players="4">
			<feature>online</feature>
			<feature>download</feature>
		</wi-fi>
		<input players="4">
			<control type="wiimote" required="true"/>
			<control type="nunchuk" required="false"/>
			<control type="gamecube" required="TRUE"/>
		</input>
		<save blocks="abc"/>
		<rom version="" name="Super Smash Bros. Brawl (USA).iso" size="7912290304" crc="11111111" md5="aa" sha1="bb"/>
		<rom version="1.01" name="second.iso"/>
	</game>
	<game name="Wii Shop Channel">
		<id>HABA</id>
		<type>Channel</type>
		<region>PAL</region>
		<languages>DE,EN</languages>
		<locale lang="DE"><title>Wii-Shop-Kanal</title></locale>
	</game>
	<game name="first dup">
		<id>RMCE01</id>
		<region>NTSC-U</region>
		<locale lang="EN"><title>Mario Kart Wii</title></locale>
	</game>
	<game name="second dup">
		<id>RMCE01</id>
		<region>NTSC-U</region>
		<locale lang="EN"><title>Mario Kart Wii (duplicate)</title></locale>
	</game>
	<game name="bare">
		<id>RBARE1</id>
	</game>
</datafile>
`
