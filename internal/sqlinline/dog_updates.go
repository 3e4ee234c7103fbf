package sqlinline

const QListDogUpdates = `--sql 4becab04-a3d0-4cb4-a1e6-39842b2dec29
select id, dog_id, photo_url, caption, posted_by, created_at
from dog_updates
where dog_id = $1::uuid
order by created_at desc;
`

const QInsertDogUpdate = `--sql 9e529390-5f25-42ec-82dd-6f611ac58bf0
insert into dog_updates(id, dog_id, photo_url, caption, posted_by, created_at)
values (gen_random_uuid(), $1::uuid, nullif($2::text, ''), $3::text, $4::uuid, now())
returning id, dog_id, photo_url, caption, posted_by, created_at;
`
